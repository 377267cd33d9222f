package acengine

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
)

func TestToString_ListsVariablesAndConstraints(t *testing.T) {
	a, b := NewValue("A"), NewValue("B")
	s := NewSolver()
	v0 := s.NewVar([]*Value{a, b})
	c := s.NewAssign(v0, a)
	s.Add(c)
	require.True(t, s.Propagate())

	out := ToString(s)
	if !strings.Contains(out, "variables:") || !strings.Contains(out, "constraints:") {
		t.Fatalf("missing expected sections: %# v", pretty.Formatter(out))
	}
	if !strings.Contains(out, "{A}") {
		t.Fatalf("expected pruned domain {A} in output: %# v", pretty.Formatter(out))
	}
	if !strings.Contains(out, c.String()) {
		t.Fatalf("expected constraint rendering in output: %# v", pretty.Formatter(out))
	}
}

func TestSolverString_DelegatesToToString(t *testing.T) {
	s := NewSolver()
	require.Equal(t, ToString(s), s.String())
}

func TestDomainString_EmptyDomain(t *testing.T) {
	d := newDomain(nil)
	require.Equal(t, "{}", domainString(d))
}
