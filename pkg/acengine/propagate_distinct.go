package acengine

import "fmt"

// Distinct is the all-different-pair propagator: when one side
// becomes a singleton, that value is removed from the other side. Per
// §4.2/§9, the propagator only ever inspects the triggering variable's
// own domain; correctness for the counterpart relies on the solver
// having awakened both sides when the constraint was added (Add
// enqueues every scope variable), so a later change to either side
// always re-triggers this propagator for that side.
type Distinct struct {
	x, y VarHandle
}

// NewDistinct builds a distinct(x, y) all-different-pair constraint.
func (s *Solver) NewDistinct(x, y VarHandle) *Distinct {
	s.mustVar(x)
	s.mustVar(y)
	return &Distinct{x: x, y: y}
}

// Scope implements Constraint.
func (d *Distinct) Scope() []VarHandle { return []VarHandle{d.x, d.y} }

// Propagate implements Constraint.
func (d *Distinct) Propagate(s *Solver, trigger VarHandle) bool {
	other := d.y
	if trigger == d.y {
		other = d.x
	}
	single, ok := s.mustVar(trigger).current.singleton()
	if !ok {
		return true // neither side inferable from a non-singleton trigger
	}
	if !s.Allows(other, single) {
		return true // already pruned, idempotent no-op
	}
	return s.remove(other, single, d)
}

// String implements Constraint.
func (d *Distinct) String() string {
	return fmt.Sprintf("distinct(v%d, v%d)", d.x, d.y)
}
