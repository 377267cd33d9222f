package scenarios

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/constraintkit/acengine/pkg/acengine"
)

func TestNames_MatchesLookup(t *testing.T) {
	for _, name := range Names() {
		_, ok := Lookup(name)
		require.True(t, ok, name)
	}
}

func TestLookup_UnknownName(t *testing.T) {
	_, ok := Lookup("does-not-exist")
	require.False(t, ok)
}

func TestAllScenarios_PropagateSuccessfully(t *testing.T) {
	for _, name := range Names() {
		sc, _ := Lookup(name)
		s := acengine.NewSolver()
		require.True(t, sc.Build(s), name)
	}
}
