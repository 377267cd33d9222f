package acengine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPropagationQueue_FIFOOrder(t *testing.T) {
	var q propagationQueue
	q.push(VarHandle(1), nil)
	q.push(VarHandle(2), nil)
	q.push(VarHandle(3), nil)

	require.Equal(t, VarHandle(1), q.pop().v)
	require.Equal(t, VarHandle(2), q.pop().v)
	require.Equal(t, VarHandle(3), q.pop().v)
	require.True(t, q.empty())
}

func TestPropagationQueue_EmptyOnFreshQueue(t *testing.T) {
	var q propagationQueue
	require.True(t, q.empty())
}

func TestPropagationQueue_OriginCarriedThrough(t *testing.T) {
	var q propagationQueue
	origin := &Clause{}
	q.push(VarHandle(0), origin)
	item := q.pop()
	require.Same(t, origin, item.origin)
}

func TestPropagationQueue_InterleavedPushPop(t *testing.T) {
	var q propagationQueue
	q.push(VarHandle(1), nil)
	require.Equal(t, VarHandle(1), q.pop().v)
	require.True(t, q.empty())

	q.push(VarHandle(2), nil)
	q.push(VarHandle(3), nil)
	require.Equal(t, VarHandle(2), q.pop().v)
	require.False(t, q.empty())
	require.Equal(t, VarHandle(3), q.pop().v)
	require.True(t, q.empty())
}
