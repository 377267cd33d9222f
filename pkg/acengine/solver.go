package acengine

import "github.com/hashicorp/go-hclog"

// Solver orchestrates variables, owns constraints, maintains
// watchlists, drives the propagation loop, and implements retraction.
// It is single-threaded and cooperative (§5): all mutation happens on
// the calling goroutine of Add, Retract, or Propagate, and the type
// does no synchronization of its own.
type Solver struct {
	vars   []*variableRecord
	active map[Constraint]struct{}

	queue propagationQueue

	subscriptions []*subscription
	notifying     int // >0 while delivering listener notifications

	log hclog.Logger
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithLogger attaches a structured logger used for trace-level
// propagation, wipeout, and retraction diagnostics. The engine never
// logs on behalf of the embedder otherwise; logging is strictly an
// external, opt-in observability layer (§1, §2.1).
func WithLogger(l hclog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// NewSolver constructs a Solver with the canonical false SAT variable
// (handle FalseVar, index 0) already allocated and pruned to {False},
// as required by §6.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		active: make(map[Constraint]struct{}),
		log:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	falseVar := s.allocVar(boolDomainValues())
	if falseVar != FalseVar {
		fail("internal error: canonical false variable did not receive handle 0")
	}
	// Prune directly rather than through remove() so construction
	// doesn't need a constraint origin: this is solver-internal setup,
	// not propagation.
	vr := s.vars[FalseVar]
	vr.current.remove(True)

	return s
}

func (s *Solver) allocVar(values []*Value) VarHandle {
	handle := VarHandle(len(s.vars))
	s.vars = append(s.vars, newVariableRecord(handle, values))
	return handle
}

func (s *Solver) mustVar(v VarHandle) *variableRecord {
	assertf(int(v) >= 0 && int(v) < len(s.vars), "unknown variable handle %d", v)
	return s.vars[v]
}

// NewSAT allocates a new boolean variable with initial domain {True, False}.
func (s *Solver) NewSAT() VarHandle {
	return s.allocVar(boolDomainValues())
}

// NewVar allocates a new variable with the given nonempty, deduplicated
// initial domain. Panics (precondition violation) if values is empty.
func (s *Solver) NewVar(values []*Value) VarHandle {
	assertf(len(values) > 0, "new_var: domain must be nonempty")
	return s.allocVar(values)
}

// Domain returns a read-only snapshot of v's current domain.
func (s *Solver) Domain(v VarHandle) []*Value {
	return s.mustVar(v).current.snapshot()
}

// Allows reports whether val is currently in v's domain.
func (s *Solver) Allows(v VarHandle, val *Value) bool {
	return s.mustVar(v).current.contains(val)
}

// Truth inspects v's current domain: True if it is exactly {True},
// False if exactly {False}, Undefined otherwise. Only meaningful for
// boolean-valued variables; callers are responsible for only asking
// this of variables built from {True, False}.
func (s *Solver) Truth(v VarHandle) Truth {
	vr := s.mustVar(v)
	if single, ok := vr.current.singleton(); ok {
		switch single {
		case True:
			return TruthTrue
		case False:
			return TruthFalse
		}
	}
	return Undefined
}

// TruthOf evaluates a literal's three-valued truth, inverting
// True/False for a negative literal and leaving Undefined unchanged.
func (s *Solver) TruthOf(l Literal) Truth {
	t := s.Truth(l.Var)
	if l.Positive || t == Undefined {
		return t
	}
	if t == TruthTrue {
		return TruthFalse
	}
	return TruthTrue
}

// Match reports whether v0 and v1's current domains intersect.
func (s *Solver) Match(v0, v1 VarHandle) bool {
	return s.mustVar(v0).current.intersects(s.mustVar(v1).current)
}

// MatchLit reports whether l0 and l1 are consistent: when their signs
// agree this is Match on the underlying variables; when they disagree
// it is the negation. Only meaningful for boolean-domain variables.
func (s *Solver) MatchLit(l0, l1 Literal) bool {
	m := s.Match(l0.Var, l1.Var)
	if l0.Positive == l1.Positive {
		return m
	}
	return !m
}

// remove deletes val from v's current domain. It is the sole mutation
// primitive propagators use (indirectly, through Solver). Subscribed
// listeners are notified of the change in either case. Returns false
// if the domain became empty as a result (wipeout); otherwise
// enqueues (v, origin) so other watchers get a chance to react.
// Precondition: val must currently
// be in v's domain — callers unsure should check Allows first.
func (s *Solver) remove(v VarHandle, val *Value, origin Constraint) bool {
	vr := s.mustVar(v)
	assertf(vr.current.contains(val), "remove: value %s not in current domain of variable %d", val, v)
	vr.current.remove(val)
	s.log.Trace("domain pruned", "var", v, "value", val.Label, "remaining", vr.current.len())
	s.notify(v)
	if vr.current.len() == 0 {
		s.log.Debug("domain wipeout", "var", v)
		return false
	}
	s.queue.push(v, origin)
	return true
}

// Add posts c: it joins the active set, is registered on the
// watchlist of every variable in its scope, and (v, nil) is enqueued
// for each such v so c — and every other watcher of v — gets its
// first chance to prune before the next Propagate call.
func (s *Solver) Add(c Constraint) {
	assertf(s.notifying == 0, "Add called reentrantly from a listener notification")
	if _, ok := s.active[c]; ok {
		return
	}
	s.active[c] = struct{}{}
	for _, v := range c.Scope() {
		vr := s.mustVar(v)
		vr.addWatcher(c)
		s.queue.push(v, nil)
	}
	s.log.Debug("constraint added", "constraint", c.String())
}

// Retract withdraws c: it is a no-op if c is not currently active.
// Otherwise it performs the coarse flood-fill restoration described in
// §4.3: every variable reachable from c's scope through the
// constraint graph has its current domain reset to its initial
// domain and is re-enqueued, and c is detached from every watchlist
// in its scope. A subsequent Propagate re-derives the arc-consistent
// closure of the remaining active constraints over the widened
// domains.
func (s *Solver) Retract(c Constraint) {
	assertf(s.notifying == 0, "Retract called reentrantly from a listener notification")
	if _, ok := s.active[c]; !ok {
		return
	}

	visited := make(map[VarHandle]struct{})
	workQueue := []Constraint{c}
	for len(workQueue) > 0 {
		cur := workQueue[0]
		workQueue = workQueue[1:]
		for _, v := range cur.Scope() {
			if _, seen := visited[v]; seen {
				continue
			}
			visited[v] = struct{}{}
			vr := s.mustVar(v)
			vr.current = vr.initial.clone()
			s.log.Trace("retraction reset domain", "var", v)
			s.notify(v)
			s.queue.push(v, nil)
			// Snapshot the watchlist before recursing: detaching c
			// below mutates the very slice we'd otherwise be ranging
			// over for v == scope variables shared with c itself.
			watchers := append([]Constraint(nil), vr.watch...)
			workQueue = append(workQueue, watchers...)
		}
	}

	for _, v := range c.Scope() {
		s.mustVar(v).removeWatcher(c)
	}
	delete(s.active, c)
	s.log.Debug("constraint retracted", "constraint", c.String())
}

// Propagate drains the propagation queue to a fixed point. It returns
// true once the queue is empty (no posted constraint can further
// prune any domain), or false as soon as some propagator reports a
// wipeout. On false, the engine's state is sticky: some domain may be
// empty, and the embedder is expected to Retract at least one
// responsible constraint before calling Propagate again (§4.1).
func (s *Solver) Propagate() bool {
	assertf(s.notifying == 0, "Propagate called reentrantly from a listener notification")
	for !s.queue.empty() {
		item := s.queue.pop()
		vr := s.mustVar(item.v)
		// No copy of the watchlist is taken: propagators never mutate
		// watchlists, and Add/Retract from inside a listener
		// notification panic, so the slice cannot change while this
		// loop ranges over it.
		watchers := vr.watch
		for _, c := range watchers {
			if c == item.origin {
				continue
			}
			s.log.Trace("invoking propagator", "var", item.v, "constraint", c.String())
			if !c.Propagate(s, item.v) {
				s.log.Debug("propagate failed", "constraint", c.String(), "var", item.v)
				return false
			}
		}
	}
	return true
}
