package systembuilder_test

import (
	"testing"

	"github.com/mikiurbi/net-flow-opt/systembuilder"
	"github.com/stretchr/testify/require"
)

func TestSeries_SingleBottleneck(t *testing.T) {
	s, err := systembuilder.BuildSystem("src", "snk",
		[]systembuilder.Option{systembuilder.WithCapacity(5)},
		systembuilder.Series(3),
	)
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	require.Equal(t, 3, s.N())

	flow, err := s.RegularFlow()
	require.NoError(t, err)
	require.InDelta(t, 5.0, flow, 1e-6)
}

func TestParallel_FlowSumsBranches(t *testing.T) {
	s, err := systembuilder.BuildSystem("src", "snk",
		[]systembuilder.Option{systembuilder.WithCapacity(5)},
		systembuilder.Parallel(4),
	)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	flow, err := s.RegularFlow()
	require.NoError(t, err)
	require.InDelta(t, 20.0, flow, 1e-6)
}

func TestComplete_TooFewRejected(t *testing.T) {
	_, err := systembuilder.BuildSystem("src", "snk", nil, systembuilder.Complete(1))
	require.ErrorIs(t, err, systembuilder.ErrTooFewComponents)
}

func TestGrid_BuildsAndValidates(t *testing.T) {
	s, err := systembuilder.BuildSystem("src", "snk",
		[]systembuilder.Option{systembuilder.WithCapacity(3), systembuilder.WithResources(2)},
		systembuilder.Grid(2, 3),
	)
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	require.Equal(t, 6, s.N())
	require.Equal(t, 2, s.Resources())
}

func TestBuildSystem_NilConstructorRejected(t *testing.T) {
	_, err := systembuilder.BuildSystem("src", "snk", nil, nil)
	require.ErrorIs(t, err, systembuilder.ErrNilConstructor)
}
