package system_test

import (
	"testing"

	"github.com/mikiurbi/net-flow-opt/system"
	"github.com/stretchr/testify/require"
)

func twoComponentSeries(t *testing.T) *system.System {
	t.Helper()
	s := system.New("s", "t", 1)
	require.NoError(t, s.AddComponent(&system.Component{ID: "c1"}))
	require.NoError(t, s.AddComponent(&system.Component{ID: "c2"}))
	require.NoError(t, s.Connect("s", "c1", 0))
	require.NoError(t, s.Connect("c1", "c2", 0))
	require.NoError(t, s.Connect("c2", "t", 0))

	return s
}

func TestSystem_RegularFlow(t *testing.T) {
	s := twoComponentSeries(t)
	flow, err := s.RegularFlow()
	require.NoError(t, err)
	require.InDelta(t, system.Unconstrained, flow, 1e-3)
}

func TestSystem_MaskInactiveCutsFlow(t *testing.T) {
	s := twoComponentSeries(t)
	g, err := s.EdgeCapacitated()
	require.NoError(t, err)

	s.MaskInactive(g, map[string]bool{"c1": true})

	reachable := false
	visited := map[string]bool{"s": true}
	queue := []string{"s"}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if u == "t" {
			reachable = true
			break
		}
		for _, v := range g.NeighborsWithCapacity(u) {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}
	require.False(t, reachable, "masking c1 must disconnect s from t")
}

func TestSystem_Validate(t *testing.T) {
	s := twoComponentSeries(t)
	require.NoError(t, s.Validate())
}

func TestSystem_ValidateUnreachable(t *testing.T) {
	s := system.New("s", "t", 1)
	require.NoError(t, s.AddComponent(&system.Component{ID: "c1"}))
	// c1 is registered but never connected to s or t.
	require.ErrorIs(t, s.Validate(), system.ErrSinkUnreachable)
}

func TestSystem_DuplicateComponent(t *testing.T) {
	s := system.New("s", "t", 1)
	require.NoError(t, s.AddComponent(&system.Component{ID: "c1"}))
	err := s.AddComponent(&system.Component{ID: "c1"})
	require.ErrorIs(t, err, system.ErrDuplicateVertex)
}

func TestSystem_ConnectUnknownVertex(t *testing.T) {
	s := system.New("s", "t", 1)
	err := s.Connect("s", "ghost", 0)
	require.ErrorIs(t, err, system.ErrVertexNotFound)
}
