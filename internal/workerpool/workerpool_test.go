package workerpool_test

import (
	"math/rand"
	"testing"

	"github.com/mikiurbi/net-flow-opt/internal/workerpool"
	"github.com/stretchr/testify/require"
)

func TestMap_SequentialAndParallelAgree(t *testing.T) {
	fn := func(i int, rng *rand.Rand) int { return i*1000 + rng.Intn(1000) }

	seq := workerpool.Map(50, 42, false, 0, fn)
	par := workerpool.Map(50, 42, true, 4, fn)

	require.Equal(t, seq, par)
}

func TestMap_ZeroTasks(t *testing.T) {
	out := workerpool.Map(0, 1, true, 4, func(i int, rng *rand.Rand) int { return i })
	require.Empty(t, out)
}

func TestMap_PreservesOrder(t *testing.T) {
	out := workerpool.Map(20, 7, true, 3, func(i int, rng *rand.Rand) int { return i })
	for i, v := range out {
		require.Equal(t, i, v)
	}
}
