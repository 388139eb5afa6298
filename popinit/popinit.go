// Package popinit builds the initial NSGA-II population: one canonical
// "no grouping" individual plus a batch of randomly grouped ones, each a
// fully evaluated plan.Plan wrapped as an individual.Individual.
//
// Random grouping works by shuffling the activity order and greedily
// folding each activity into an open slot it is jointly feasible with (per
// group.Feasible) and that still has capacity — a slot's member count
// cannot exceed sys.Resources(), since every member occupies one crew for
// that execution date. If no open slot accepts it, a new slot is opened,
// which always succeeds, so no retry budget is needed here. Each component's resource is then sampled
// independently and uniformly from {0,...,R-1}.
package popinit

import (
	"math/rand"

	"github.com/mikiurbi/net-flow-opt/activity"
	"github.com/mikiurbi/net-flow-opt/group"
	"github.com/mikiurbi/net-flow-opt/individual"
	"github.com/mikiurbi/net-flow-opt/internal/workerpool"
	"github.com/mikiurbi/net-flow-opt/plan"
	"github.com/mikiurbi/net-flow-opt/system"
)

// Generate returns a population of size popSize evaluated against sys and
// base: index 0 is always the canonical singleton grouping (every activity
// in its own slot, each on an independently and uniformly sampled
// resource), and the remaining popSize-1 are randomly grouped.
//
// When parallel is true, the random individuals are built across a worker
// pool; each gets its own RNG stream derived from seed, so the resulting
// population is identical, plan-for-plan, whether parallel is true or
// false.
func Generate(sys *system.System, base []*activity.Activity, popSize int, seed int64, parallel bool) ([]*individual.Individual, error) {
	if len(base) == 0 {
		return nil, ErrNoActivities
	}
	if popSize <= 0 {
		return nil, nil
	}

	pop := make([]*individual.Individual, popSize)

	seedRNG := rand.New(rand.NewSource(seed))
	singletonSlot := make([]int, len(base))
	singletonResource := make([]int, len(base))
	for i := range base {
		singletonSlot[i] = i
		singletonResource[i] = seedRNG.Intn(sys.Resources())
	}
	singleton, err := plan.New(sys, base, singletonSlot, singletonResource)
	if err != nil {
		return nil, err
	}
	pop[0] = individual.New(singleton)

	if popSize == 1 {
		return pop, nil
	}

	results := workerpool.Map(popSize-1, seed, parallel, 0, func(_ int, rng *rand.Rand) *individual.Individual {
		slot, resource := randomGrouping(base, sys.Resources(), rng)
		p, err := plan.New(sys, base, slot, resource)
		if err != nil {
			// A random grouping is built by construction to always be
			// feasible (see randomGrouping); a failure here means sys or
			// base themselves are invalid, which the caller should have
			// caught via System.Validate before reaching population init.
			return nil
		}

		return individual.New(p)
	})
	copy(pop[1:], results)

	return pop, nil
}

// randomGrouping returns a random, feasible (slot, resource) assignment for
// base, built by shuffling activity order and greedily folding each
// activity into an open slot it is jointly feasible with and that has
// fewer than resources members already. Each component's resource is
// sampled independently and uniformly from {0,...,resources-1}.
func randomGrouping(base []*activity.Activity, resources int, rng *rand.Rand) ([]int, []int) {
	n := len(base)
	order := rng.Perm(n)

	slot := make([]int, n)
	resourceOf := make([]int, n)

	var members [][]*activity.Activity // slot index -> member activities

	for _, idx := range order {
		a := base[idx]

		placed := false
		candidateOrder := rng.Perm(len(members))
		for _, s := range candidateOrder {
			if len(members[s]) >= resources {
				continue
			}
			candidate := append(append([]*activity.Activity(nil), members[s]...), a)
			if group.Feasible(candidate) {
				members[s] = candidate
				slot[idx] = s
				placed = true

				break
			}
		}
		if !placed {
			s := len(members)
			members = append(members, []*activity.Activity{a})
			slot[idx] = s
		}
		resourceOf[idx] = rng.Intn(resources)
	}

	return slot, resourceOf
}
