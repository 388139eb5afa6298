package nsga2_test

import (
	"testing"

	"github.com/mikiurbi/net-flow-opt/activity"
	"github.com/mikiurbi/net-flow-opt/nsga2"
	"github.com/mikiurbi/net-flow-opt/system"
	"github.com/stretchr/testify/require"
)

func fanSystem(t *testing.T, n, resources int) (*system.System, []*activity.Activity) {
	t.Helper()

	s := system.New("src", "snk", resources)
	base := make([]*activity.Activity, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		c := &system.Component{ID: id, Cp: 1, Cc: 10, Alpha: 1, Beta: 2, XStar: 10, PhiStar: 1}
		require.NoError(t, s.AddComponent(c))
		require.NoError(t, s.Connect("src", id, 5))
		require.NoError(t, s.Connect(id, "snk", 5))
		base[i] = activity.New(c, float64(i), 1)
	}

	return s, base
}

func TestRun_ProducesStablePopulationSize(t *testing.T) {
	s, base := fanSystem(t, 6, 2)

	result, err := nsga2.Run(s, base,
		nsga2.WithPopulationSize(10),
		nsga2.WithGenerations(5),
		nsga2.WithMutationRate(0.3),
		nsga2.WithSeed(13),
	)
	require.NoError(t, err)
	require.Len(t, result.Population, 10)
	require.NotEmpty(t, result.ParetoFront)
	for _, p := range result.ParetoFront {
		require.Equal(t, 0, p.Rank)
	}
}

func TestRun_SequentialAndParallelAgree(t *testing.T) {
	s, base := fanSystem(t, 5, 2)

	seq, err := nsga2.Run(s, base,
		nsga2.WithPopulationSize(8),
		nsga2.WithGenerations(4),
		nsga2.WithMutationRate(0.4),
		nsga2.WithSeed(7),
		nsga2.WithParallel(false),
	)
	require.NoError(t, err)

	par, err := nsga2.Run(s, base,
		nsga2.WithPopulationSize(8),
		nsga2.WithGenerations(4),
		nsga2.WithMutationRate(0.4),
		nsga2.WithSeed(7),
		nsga2.WithParallel(true),
	)
	require.NoError(t, err)

	require.Len(t, par.Population, len(seq.Population))
	for i := range seq.Population {
		require.Equal(t, seq.Population[i].Plan.Slot, par.Population[i].Plan.Slot)
		require.Equal(t, seq.Population[i].Plan.Resource, par.Population[i].Plan.Resource)
	}
}

func TestRun_InvalidPopulationSizeRejected(t *testing.T) {
	s, base := fanSystem(t, 3, 1)
	_, err := nsga2.Run(s, base, nsga2.WithPopulationSize(1))
	require.Error(t, err)
}

func TestRun_ProgressCallbackFiresPerGeneration(t *testing.T) {
	s, base := fanSystem(t, 4, 1)

	var calls []int
	_, err := nsga2.Run(s, base,
		nsga2.WithPopulationSize(6),
		nsga2.WithGenerations(3),
		nsga2.WithOnGeneration(func(gen, total int) { calls = append(calls, gen) }),
	)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, calls)
}

func TestRun_EmptyActivitiesRejected(t *testing.T) {
	s, _ := fanSystem(t, 1, 1)
	_, err := nsga2.Run(s, nil)
	require.ErrorIs(t, err, nsga2.ErrNoActivities)
}

func TestRun_PopulationHistoryHasOneEntryPerGenerationPlusInitial(t *testing.T) {
	s, base := fanSystem(t, 5, 2)

	result, err := nsga2.Run(s, base,
		nsga2.WithPopulationSize(8),
		nsga2.WithGenerations(4),
		nsga2.WithMutationRate(0.3),
		nsga2.WithSeed(5),
	)
	require.NoError(t, err)
	require.Len(t, result.PopulationHistory, 5) // Generations + 1

	for _, gen := range result.PopulationHistory {
		require.Len(t, gen, 8)
		for _, p := range gen {
			require.GreaterOrEqual(t, p.Rank, 0)
		}
	}
	require.Equal(t, result.Population, result.PopulationHistory[len(result.PopulationHistory)-1])
}

func TestRun_PopulationHistoryIdenticalAcrossRuns(t *testing.T) {
	s, base := fanSystem(t, 5, 2)

	run := func() *nsga2.Result {
		r, err := nsga2.Run(s, base,
			nsga2.WithPopulationSize(8),
			nsga2.WithGenerations(4),
			nsga2.WithMutationRate(0.3),
			nsga2.WithSeed(21),
		)
		require.NoError(t, err)

		return r
	}

	first, second := run(), run()
	require.Len(t, first.PopulationHistory, len(second.PopulationHistory))
	for g := range first.PopulationHistory {
		require.Len(t, second.PopulationHistory[g], len(first.PopulationHistory[g]))
		for i := range first.PopulationHistory[g] {
			a, b := first.PopulationHistory[g][i], second.PopulationHistory[g][i]
			require.Equal(t, a.Plan.Slot, b.Plan.Slot)
			require.Equal(t, a.Plan.Resource, b.Plan.Resource)
			require.Equal(t, a.Rank, b.Rank)
			require.Equal(t, a.CrowdingDistance, b.CrowdingDistance)
		}
	}
}
