package evaluator_test

import (
	"testing"

	"github.com/mikiurbi/net-flow-opt/activity"
	"github.com/mikiurbi/net-flow-opt/evaluator"
	"github.com/mikiurbi/net-flow-opt/system"
	"github.com/stretchr/testify/require"
)

func twoParallelComponents(t *testing.T) (*system.System, *system.Component, *system.Component) {
	t.Helper()

	s := system.New("src", "snk", 1)
	c1 := &system.Component{ID: "c1"}
	c2 := &system.Component{ID: "c2"}
	require.NoError(t, s.AddComponent(c1))
	require.NoError(t, s.AddComponent(c2))
	require.NoError(t, s.Connect("src", "c1", 5))
	require.NoError(t, s.Connect("c1", "snk", 5))
	require.NoError(t, s.Connect("src", "c2", 5))
	require.NoError(t, s.Connect("c2", "snk", 5))

	return s, c1, c2
}

func TestLostFlow_SingleOutageDuringWindow(t *testing.T) {
	s, c1, _ := twoParallelComponents(t)

	acts := []*activity.Activity{activity.New(c1, 0, 2)}
	lf, err := evaluator.LostFlow(s, acts)
	require.NoError(t, err)
	require.InDelta(t, 10.0, lf, 1e-6) // (10 regular - 5 degraded) * 2 time units
}

func TestLostFlow_NoOutageIsZero(t *testing.T) {
	s, c1, _ := twoParallelComponents(t)

	acts := []*activity.Activity{activity.New(c1, 5, 0)}
	lf, err := evaluator.LostFlow(s, acts)
	require.NoError(t, err)
	require.InDelta(t, 0.0, lf, 1e-6)
}

func TestLostFlow_OverlappingOutagesStack(t *testing.T) {
	s, c1, c2 := twoParallelComponents(t)

	acts := []*activity.Activity{
		activity.New(c1, 0, 3),
		activity.New(c2, 1, 3),
	}
	lf, err := evaluator.LostFlow(s, acts)
	require.NoError(t, err)
	// [0,1): only c1 down, flow=5, loss=5*1=5
	// [1,3): both down, flow=0, loss=10*2=20
	// [3,4): only c2 down, flow=5, loss=5*1=5
	require.InDelta(t, 30.0, lf, 1e-6)
}

func TestLostFlow_EmptyScheduleRejected(t *testing.T) {
	s, _, _ := twoParallelComponents(t)
	_, err := evaluator.LostFlow(s, nil)
	require.ErrorIs(t, err, evaluator.ErrNoActivities)
}
