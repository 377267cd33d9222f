package acengine

import (
	"fmt"
	"sort"
	"strings"
)

// ToString renders a human-readable dump of every variable's current
// domain and every active constraint, for debugging. No machine
// readable format is specified (§6); callers that need structured
// output should walk Domain/Truth/active constraints themselves.
func ToString(s *Solver) string {
	var b strings.Builder
	b.WriteString("variables:\n")
	for _, vr := range s.vars {
		fmt.Fprintf(&b, "  v%d = %s\n", vr.handle, domainString(vr.current))
	}
	b.WriteString("constraints:\n")
	names := make([]string, 0, len(s.active))
	for c := range s.active {
		names = append(names, c.String())
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintf(&b, "  %s\n", n)
	}
	return b.String()
}

func domainString(d domain) string {
	labels := make([]string, len(d.values))
	for i, v := range d.values {
		labels[i] = v.Label
	}
	return "{" + strings.Join(labels, ", ") + "}"
}

// String implements fmt.Stringer for Solver itself, delegating to ToString.
func (s *Solver) String() string {
	return ToString(s)
}
