// Package mutator implements NSGA-II's sole variation operator for this
// domain (no crossover, by design): independent per-component resampling of
// the GroupingStructure.
//
// Each activity is mutated independently with probability pm. A mutated
// activity's candidate destinations are the other slots currently open in
// the parent that still have capacity (fewer than sys.Resources() members
// — every member of a slot occupies one crew for that execution date) plus
// one fresh, as-yet-unused slot; candidates are screened by group.Feasible
// against the base (nominal, pre-minimization) schedule before being
// offered. The chosen destination's resource is then sampled independently
// and uniformly. If no destination screens feasible — which in practice
// only happens when the fresh-slot option itself is somehow excluded —
// the activity's assignment is left unchanged rather than forced into an
// infeasible group.
package mutator

import (
	"math/rand"

	"github.com/mikiurbi/net-flow-opt/activity"
	"github.com/mikiurbi/net-flow-opt/group"
	"github.com/mikiurbi/net-flow-opt/individual"
	"github.com/mikiurbi/net-flow-opt/internal/workerpool"
	"github.com/mikiurbi/net-flow-opt/plan"
	"github.com/mikiurbi/net-flow-opt/system"
)

// Mutate returns a freshly evaluated Individual derived from parent by
// independently resampling each activity's slot/resource assignment with
// probability pm. base supplies the nominal (pre-minimization) dates used
// for feasibility screening; it must be the same slice Generate/prior
// mutations were built from.
func Mutate(sys *system.System, base []*activity.Activity, parent *individual.Individual, pm float64, rng *rand.Rand) (*individual.Individual, error) {
	slot := append([]int(nil), parent.Plan.Slot...)
	resource := append([]int(nil), parent.Plan.Resource...)

	membersBySlot := make(map[int][]int) // slot id -> base-activity indices
	for i, s := range slot {
		membersBySlot[s] = append(membersBySlot[s], i)
	}
	nextSlot := 0
	for s := range membersBySlot {
		if s >= nextSlot {
			nextSlot = s + 1
		}
	}

	resources := sys.Resources()

	for i := range base {
		if rng.Float64() >= pm {
			continue
		}

		current := slot[i]
		candidates := make([]int, 0, len(membersBySlot))
		for s, idxs := range membersBySlot {
			if s != current && len(idxs) < resources {
				candidates = append(candidates, s)
			}
		}
		freshSlot := nextSlot
		candidates = append(candidates, freshSlot)
		rng.Shuffle(len(candidates), func(a, b int) { candidates[a], candidates[b] = candidates[b], candidates[a] })

		chosen, found := -1, false
		for _, s := range candidates {
			if s == freshSlot {
				chosen, found = freshSlot, true

				break
			}
			members := make([]*activity.Activity, 0, len(membersBySlot[s])+1)
			for _, idx := range membersBySlot[s] {
				if idx != i {
					members = append(members, base[idx])
				}
			}
			members = append(members, base[i])
			if group.Feasible(members) {
				chosen, found = s, true

				break
			}
		}
		if !found {
			continue // graceful no-op: leave the activity's assignment unchanged
		}

		// Remove i from its current slot's bookkeeping.
		membersBySlot[current] = removeIdx(membersBySlot[current], i)
		if len(membersBySlot[current]) == 0 {
			delete(membersBySlot, current)
		}

		if chosen == freshSlot {
			membersBySlot[freshSlot] = []int{i}
			slot[i] = freshSlot
			nextSlot++
		} else {
			membersBySlot[chosen] = append(membersBySlot[chosen], i)
			slot[i] = chosen
		}
		resource[i] = rng.Intn(resources)
	}

	p, err := plan.New(sys, base, slot, resource)
	if err != nil {
		return nil, err
	}

	return individual.New(p), nil
}

// MutatePopulation applies Mutate independently to every member of pop,
// optionally across a worker pool; each member's mutation gets its own RNG
// stream derived from seed, so the sequential and parallel outputs match
// member-for-member.
func MutatePopulation(sys *system.System, base []*activity.Activity, pop []*individual.Individual, pm float64, seed int64, parallel bool) ([]*individual.Individual, error) {
	type outcome struct {
		ind *individual.Individual
		err error
	}

	results := workerpool.Map(len(pop), seed, parallel, 0, func(i int, rng *rand.Rand) outcome {
		child, err := Mutate(sys, base, pop[i], pm, rng)

		return outcome{ind: child, err: err}
	})

	out := make([]*individual.Individual, len(pop))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		out[i] = r.ind
	}

	return out, nil
}

func removeIdx(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
