package acengine

// Listener is notified synchronously whenever one of its subscribed
// variables' current domain changes, whether from Propagate's own
// remove or from Retract's domain reset. Delivery is in-order for a
// single variable but not globally ordered across variables (§4.4).
//
// A Listener must not call any Solver mutator (Add, Retract,
// Propagate) from inside OnChange: the solver is already mid-mutation
// when it notifies, and reentering it is a precondition violation
// (§4.4, §7) that the solver detects and panics on.
type Listener interface {
	OnChange(v VarHandle)
}

// subscription tracks one Listener's interest in one variable, so
// Unsubscribe can remove it from every variable it watches without
// the caller needing to remember the list.
type subscription struct {
	listener Listener
	vars     []VarHandle
}

// Subscribe registers listener to be notified when any of vars
// changes. Unsubscribe(listener) later removes every subscription
// made for it.
func (s *Solver) Subscribe(listener Listener, vars ...VarHandle) {
	sub := &subscription{listener: listener, vars: append([]VarHandle(nil), vars...)}
	s.subscriptions = append(s.subscriptions, sub)
	for _, v := range vars {
		vr := s.mustVar(v)
		vr.listeners = append(vr.listeners, sub)
	}
}

// Unsubscribe removes listener from every variable it was subscribed
// to. It is a no-op if listener was never subscribed.
func (s *Solver) Unsubscribe(listener Listener) {
	kept := s.subscriptions[:0]
	for _, sub := range s.subscriptions {
		if sub.listener == listener {
			for _, v := range sub.vars {
				vr := s.mustVar(v)
				for i, ls := range vr.listeners {
					if ls == sub {
						vr.listeners = append(vr.listeners[:i], vr.listeners[i+1:]...)
						break
					}
				}
			}
			continue
		}
		kept = append(kept, sub)
	}
	s.subscriptions = kept
}

// notify delivers a change on v to every listener subscribed to it,
// guarding against reentrant solver mutation from inside OnChange.
func (s *Solver) notify(v VarHandle) {
	vr := s.vars[v]
	if len(vr.listeners) == 0 {
		return
	}
	s.notifying++
	defer func() { s.notifying-- }()
	for _, sub := range vr.listeners {
		sub.listener.OnChange(v)
	}
}
