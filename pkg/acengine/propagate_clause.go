package acengine

import (
	"fmt"
	"strings"
)

// Clause is a disjunction of literals, arc-consistent via unit
// propagation: if every literal but one is falsified, the remaining
// literal's variable is pruned to the value that makes it true.
type Clause struct {
	lits  []Literal
	scope []VarHandle
}

// NewClause builds a clause(l1 ∨ l2 ∨ ... ∨ ln) over the given
// literals. Scope is the distinct set of variables among the
// literals.
func (s *Solver) NewClause(lits ...Literal) *Clause {
	assertf(len(lits) > 0, "new_clause: at least one literal required")
	seen := make(map[VarHandle]struct{})
	scope := make([]VarHandle, 0, len(lits))
	for _, l := range lits {
		s.mustVar(l.Var) // validates the handle
		if _, ok := seen[l.Var]; !ok {
			seen[l.Var] = struct{}{}
			scope = append(scope, l.Var)
		}
	}
	return &Clause{lits: append([]Literal(nil), lits...), scope: scope}
}

// Scope implements Constraint.
func (c *Clause) Scope() []VarHandle { return c.scope }

// Propagate implements Constraint: unit propagation over the clause's
// literals, per §4.2.
func (c *Clause) Propagate(s *Solver, _ VarHandle) bool {
	var unit Literal
	undefinedCount := 0
	for _, l := range c.lits {
		switch s.TruthOf(l) {
		case TruthTrue:
			return true // clause already satisfied
		case Undefined:
			undefinedCount++
			unit = l
			if undefinedCount > 1 {
				return true // two or more open literals, nothing to derive yet
			}
		}
	}
	if undefinedCount == 0 {
		return false // every literal is false: conflict
	}
	// Exactly one undefined literal: it must hold, so remove the
	// value that would falsify it from its variable.
	val := unit.falsifyingValue()
	if !s.Allows(unit.Var, val) {
		return true // already pruned, idempotent no-op
	}
	return s.remove(unit.Var, val, c)
}

// String implements Constraint.
func (c *Clause) String() string {
	parts := make([]string, len(c.lits))
	for i, l := range c.lits {
		if l.Positive {
			parts[i] = fmt.Sprintf("v%d", l.Var)
		} else {
			parts[i] = fmt.Sprintf("¬v%d", l.Var)
		}
	}
	return "clause(" + strings.Join(parts, " ∨ ") + ")"
}
