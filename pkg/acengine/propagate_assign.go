package acengine

import "fmt"

// Assign forces v to a single value: every other value currently in
// v's domain is removed. Posting an Assign whose value is not in v's
// initial domain is a precondition violation (checked at construction
// time, per §4.2).
type Assign struct {
	v   VarHandle
	val *Value
}

// NewAssign builds an assign(v, val) constraint. Panics if val is not
// in v's initial domain.
func (s *Solver) NewAssign(v VarHandle, val *Value) *Assign {
	vr := s.mustVar(v)
	assertf(vr.initial.contains(val), "new_assign: value %s not in initial domain of variable %d", val, v)
	return &Assign{v: v, val: val}
}

// Scope implements Constraint.
func (a *Assign) Scope() []VarHandle { return []VarHandle{a.v} }

// Propagate implements Constraint. If val is no longer in the current
// domain when this first runs, the assignment is unsatisfiable.
func (a *Assign) Propagate(s *Solver, _ VarHandle) bool {
	if !s.Allows(a.v, a.val) {
		return false
	}
	// Collect first, then remove: iterating a domain while mutating it
	// is the classic unsafe pattern this engine's propagators must
	// avoid (§4.2, §9).
	for _, v := range s.Domain(a.v) {
		if v == a.val {
			continue
		}
		if !s.remove(a.v, v, a) {
			return false
		}
	}
	return true
}

// String implements Constraint.
func (a *Assign) String() string {
	return fmt.Sprintf("assign(v%d, %s)", a.v, a.val)
}
