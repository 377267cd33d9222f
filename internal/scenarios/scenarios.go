// Package scenarios bundles small, named constraint-propagation setups
// used by the acengine-demo CLI. Each
// scenario builds its own variables and constraints on a fresh solver
// and runs propagation to completion.
package scenarios

import "github.com/constraintkit/acengine/pkg/acengine"

// Scenario builds a set of variables and constraints on s and
// propagates them, returning Propagate's result.
type Scenario struct {
	Name  string
	Build func(s *acengine.Solver) bool
}

var registry = []Scenario{
	{Name: "unit-clause", Build: unitClause},
	{Name: "equality-chain", Build: equalityChain},
	{Name: "distinct-triangle", Build: distinctTriangle},
	{Name: "imply-contrapositive", Build: implyContrapositive},
	{Name: "graph-coloring", Build: graphColoring},
}

// Names returns the registered scenario names, in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, sc := range registry {
		names[i] = sc.Name
	}
	return names
}

// Lookup finds a scenario by name.
func Lookup(name string) (Scenario, bool) {
	for _, sc := range registry {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

func unitClause(s *acengine.Solver) bool {
	p := s.NewSAT()
	q := s.NewSAT()
	s.Add(s.NewClause(acengine.Pos(p), acengine.Pos(q)))
	s.Add(s.NewAssign(p, acengine.False))
	return s.Propagate()
}

func equalityChain(s *acengine.Solver) bool {
	a, b, c := acengine.NewValue("A"), acengine.NewValue("B"), acengine.NewValue("C")
	x := s.NewVar([]*acengine.Value{a, b, c})
	y := s.NewVar([]*acengine.Value{a, b, c})
	z := s.NewVar([]*acengine.Value{a, b, c})
	s.Add(s.NewEqual(x, y))
	s.Add(s.NewEqual(y, z))
	s.Add(s.NewAssign(x, a))
	return s.Propagate()
}

func distinctTriangle(s *acengine.Solver) bool {
	a, b := acengine.NewValue("A"), acengine.NewValue("B")
	x := s.NewVar([]*acengine.Value{a, b})
	y := s.NewVar([]*acengine.Value{a, b})
	z := s.NewVar([]*acengine.Value{a, b})
	s.Add(s.NewDistinct(x, y))
	s.Add(s.NewDistinct(y, z))
	s.Add(s.NewAssign(x, a))
	return s.Propagate()
}

func implyContrapositive(s *acengine.Solver) bool {
	p, q := s.NewSAT(), s.NewSAT()
	s.Add(s.NewImply(p, acengine.True, q, acengine.True))
	s.Add(s.NewForbid(q, acengine.True))
	return s.Propagate()
}

// graphColoring colors a 4-cycle (v0-v1-v2-v3-v0) with 3 colors using
// only Distinct between adjacent vertices, with no search: arc
// consistency alone leaves every vertex's domain at size 3 here, which
// is the point of running it as a demo — it shows the limits of pure
// propagation on a graph that needs backtracking to actually color.
func graphColoring(s *acengine.Solver) bool {
	red, green, blue := acengine.NewValue("red"), acengine.NewValue("green"), acengine.NewValue("blue")
	colors := []*acengine.Value{red, green, blue}
	v0 := s.NewVar(colors)
	v1 := s.NewVar(colors)
	v2 := s.NewVar(colors)
	v3 := s.NewVar(colors)
	s.Add(s.NewDistinct(v0, v1))
	s.Add(s.NewDistinct(v1, v2))
	s.Add(s.NewDistinct(v2, v3))
	s.Add(s.NewDistinct(v3, v0))
	return s.Propagate()
}
