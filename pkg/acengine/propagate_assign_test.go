package acengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssign_PrunesToSingleValue(t *testing.T) {
	a, b, c := NewValue("A"), NewValue("B"), NewValue("C")
	s := NewSolver()
	v := s.NewVar([]*Value{a, b, c})
	s.Add(s.NewAssign(v, b))
	require.True(t, s.Propagate())
	require.Equal(t, []*Value{b}, s.Domain(v))
}

func TestAssign_FailsIfValueAlreadyPrunedFromCurrentDomain(t *testing.T) {
	a, b := NewValue("A"), NewValue("B")
	s := NewSolver()
	v := s.NewVar([]*Value{a, b})
	s.Add(s.NewForbid(v, a))
	s.Add(s.NewAssign(v, a))
	require.False(t, s.Propagate())
}

func TestAssign_IdempotentOnRepeatedPropagate(t *testing.T) {
	a, b := NewValue("A"), NewValue("B")
	s := NewSolver()
	v := s.NewVar([]*Value{a, b})
	s.Add(s.NewAssign(v, a))
	require.True(t, s.Propagate())
	require.True(t, s.Propagate())
	require.Equal(t, []*Value{a}, s.Domain(v))
}
