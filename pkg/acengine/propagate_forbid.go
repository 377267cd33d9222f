package acengine

import "fmt"

// Forbid removes a single value from a variable's domain, and is
// idempotent once that value is gone.
type Forbid struct {
	v   VarHandle
	val *Value
}

// NewForbid builds a forbid(v, val) constraint.
func (s *Solver) NewForbid(v VarHandle, val *Value) *Forbid {
	s.mustVar(v)
	return &Forbid{v: v, val: val}
}

// Scope implements Constraint.
func (f *Forbid) Scope() []VarHandle { return []VarHandle{f.v} }

// Propagate implements Constraint.
func (f *Forbid) Propagate(s *Solver, _ VarHandle) bool {
	if !s.Allows(f.v, f.val) {
		return true // already removed: silent success, per §7
	}
	return s.remove(f.v, f.val, f)
}

// String implements Constraint.
func (f *Forbid) String() string {
	return fmt.Sprintf("forbid(v%d, %s)", f.v, f.val)
}
