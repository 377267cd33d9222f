package acengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImply_ForwardForcesConclusion(t *testing.T) {
	s := NewSolver()
	p, q := s.NewSAT(), s.NewSAT()
	s.Add(s.NewImply(p, True, q, True))
	s.Add(s.NewAssign(p, True))
	require.True(t, s.Propagate())
	require.Equal(t, []*Value{True}, s.Domain(q))
}

func TestImply_VacuousWhenPremiseNeverHolds(t *testing.T) {
	s := NewSolver()
	p, q := s.NewSAT(), s.NewSAT()
	s.Add(s.NewImply(p, True, q, True))
	s.Add(s.NewAssign(p, False))
	require.True(t, s.Propagate())
	require.ElementsMatch(t, []*Value{True, False}, s.Domain(q))
}

func TestImply_ContrapositiveForcesPremiseFalse(t *testing.T) {
	s := NewSolver()
	p, q := s.NewSAT(), s.NewSAT()
	s.Add(s.NewImply(p, True, q, True))
	s.Add(s.NewForbid(q, True))
	require.True(t, s.Propagate())
	require.Equal(t, []*Value{False}, s.Domain(p))
}
