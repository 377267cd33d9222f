package acengine

import "fmt"

// Equal enforces current_domain(x) == current_domain(y): whichever
// side triggered it loses any value the other side no longer allows.
type Equal struct {
	x, y VarHandle
}

// NewEqual builds an equal(x, y) constraint.
func (s *Solver) NewEqual(x, y VarHandle) *Equal {
	s.mustVar(x)
	s.mustVar(y)
	return &Equal{x: x, y: y}
}

// Scope implements Constraint.
func (e *Equal) Scope() []VarHandle { return []VarHandle{e.x, e.y} }

// Propagate implements Constraint: prune from the side that didn't
// just change everything it no longer shares with the side that did,
// then the reverse, so a single call restores equality regardless of
// which variable triggered it (idempotent once both sides match).
func (e *Equal) Propagate(s *Solver, trigger VarHandle) bool {
	other := e.y
	if trigger == e.y {
		other = e.x
	}
	if !e.syncFrom(s, trigger, other) {
		return false
	}
	return e.syncFrom(s, other, trigger)
}

// syncFrom removes every value from to's domain that from's domain
// no longer contains, collecting first to avoid mutating while
// iterating (§9 iteration-during-mutation idiom).
func (e *Equal) syncFrom(s *Solver, from, to VarHandle) bool {
	fromDomain := s.Domain(from)
	toDomain := s.Domain(to)
	var toRemove []*Value
	for _, v := range toDomain {
		found := false
		for _, fv := range fromDomain {
			if fv == v {
				found = true
				break
			}
		}
		if !found {
			toRemove = append(toRemove, v)
		}
	}
	for _, v := range toRemove {
		if !s.Allows(to, v) {
			continue
		}
		if !s.remove(to, v, e) {
			return false
		}
	}
	return true
}

// String implements Constraint.
func (e *Equal) String() string {
	return fmt.Sprintf("equal(v%d, v%d)", e.x, e.y)
}
