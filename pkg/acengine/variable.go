package acengine

// VarHandle is a dense, non-negative integer identifying a variable
// within a Solver, assigned in allocation order starting at 0. Handle
// 0 is always the canonical "false" SAT variable reserved by the
// constructor (see NewSolver); embedders never need to allocate it
// themselves.
type VarHandle int

// FalseVar is the reserved handle of the canonical false SAT
// variable, whose domain is pruned to {False} inside NewSolver.
const FalseVar VarHandle = 0

// variableRecord holds the per-variable state described in §3 of the
// specification: an immutable initial domain, a mutable current
// domain, and the watchlist of constraints observing this variable.
type variableRecord struct {
	handle  VarHandle
	initial domain // immutable after construction
	current domain // current ⊆ initial, invariant enforced by remove()
	watch   []Constraint
	// listeners holds the subset of the solver's listeners subscribed
	// to this variable, in subscription order.
	listeners []*subscription
}

func newVariableRecord(handle VarHandle, values []*Value) *variableRecord {
	assertf(len(values) > 0, "new_var: initial domain must be nonempty")
	init := newDomain(values)
	return &variableRecord{
		handle:  handle,
		initial: init,
		current: init.clone(),
	}
}

// addWatcher registers c to be reconsidered whenever this variable's
// domain changes, unless it is already watching.
func (vr *variableRecord) addWatcher(c Constraint) {
	for _, w := range vr.watch {
		if w == c {
			return
		}
	}
	vr.watch = append(vr.watch, c)
}

// removeWatcher detaches c from this variable's watchlist.
func (vr *variableRecord) removeWatcher(c Constraint) {
	for i, w := range vr.watch {
		if w == c {
			vr.watch = append(vr.watch[:i], vr.watch[i+1:]...)
			return
		}
	}
}
