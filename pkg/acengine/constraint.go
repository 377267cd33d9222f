package acengine

// Constraint is the polymorphic propagator protocol every constraint
// kind implements. The solver is deliberately ignorant of concrete
// constraint kinds: it only ever calls Scope, Propagate, and String.
//
// Implementations must be idempotent on a fixed store (running
// Propagate again once it has returned true changes nothing) and
// monotone (Propagate never adds a value back to any domain).
// Propagators own no mutable state of the solver; they receive a
// non-owning *Solver back-reference for the duration of a single
// Propagate call so they can inspect and prune domains.
type Constraint interface {
	// Scope returns the distinct variables this constraint watches.
	Scope() []VarHandle

	// Propagate is invoked when trigger's domain has changed. It
	// returns true if the constraint cannot prove a wipeout from the
	// current state, false if it detects one (some domain in its
	// scope would become, or already is, empty).
	Propagate(s *Solver, trigger VarHandle) bool

	// String renders the constraint for debug output (to_string).
	String() string
}
