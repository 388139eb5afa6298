package group_test

import (
	"testing"

	"github.com/mikiurbi/net-flow-opt/activity"
	"github.com/mikiurbi/net-flow-opt/group"
	"github.com/mikiurbi/net-flow-opt/system"
	"github.com/stretchr/testify/require"
)

func threeActivities() []*activity.Activity {
	c := func(id string) *system.Component {
		return &system.Component{ID: id, Alpha: 1, Beta: 2, Cp: 1, Cc: 10, PhiStar: 5, XStar: 1}
	}

	return []*activity.Activity{
		activity.New(c("c0"), 0, 0.1),
		activity.New(c("c1"), 1, 0.1),
		activity.New(c("c2"), 2, 0.1),
	}
}

func TestGroup_MinimizeConvergesWithinBounds(t *testing.T) {
	acts := threeActivities()
	g, err := group.New(acts)
	require.NoError(t, err)

	converged, err := g.Minimize()
	require.NoError(t, err)
	require.True(t, converged)
	require.Greater(t, g.IC, 0.0)
	for _, a := range acts {
		require.Greater(t, a.T, 0.0)
		require.Less(t, a.T, 2.0)
	}
}

func TestGroup_MinimizeIdempotent(t *testing.T) {
	acts := threeActivities()
	g, err := group.New(acts)
	require.NoError(t, err)

	_, err = g.Minimize()
	require.NoError(t, err)
	icAfterFirst := g.IC
	datesAfterFirst := make([]float64, len(acts))
	for i, a := range acts {
		datesAfterFirst[i] = a.T
	}

	_, err = g.Minimize()
	require.NoError(t, err)
	require.InDelta(t, icAfterFirst, g.IC, 1e-3)
	for i, a := range acts {
		require.InDelta(t, datesAfterFirst[i], a.T, 1e-3)
	}
}

func TestGroup_InfeasibleRejected(t *testing.T) {
	c := func(id string) *system.Component {
		return &system.Component{ID: id, Alpha: 1, Beta: 2, Cp: 1, Cc: 10, PhiStar: 5, XStar: 0.5}
	}
	acts := []*activity.Activity{
		activity.New(c("c0"), 0, 1),
		activity.New(c("c1"), 10, 1),
	}
	_, err := group.New(acts)
	require.ErrorIs(t, err, group.ErrInfeasible)
}

func TestGroup_FeasibleWindowsOverlap(t *testing.T) {
	c := func(id string) *system.Component {
		return &system.Component{ID: id, XStar: 5}
	}
	acts := []*activity.Activity{
		activity.New(c("c0"), 0, 1),
		activity.New(c("c1"), 3, 1),
	}
	require.True(t, group.Feasible(acts))
}

func TestGroup_EmptyRejected(t *testing.T) {
	_, err := group.New(nil)
	require.ErrorIs(t, err, group.ErrEmptyGroup)
}
