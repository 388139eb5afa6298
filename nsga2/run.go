// Package nsga2 implements the generational NSGA-II loop over maintenance
// scheduling plans: elitist selection by non-dominated rank and crowding
// distance, with mutation as the sole variation operator (no crossover).
package nsga2

import (
	"fmt"
	"slices"
	"sort"

	"github.com/mikiurbi/net-flow-opt/activity"
	"github.com/mikiurbi/net-flow-opt/individual"
	"github.com/mikiurbi/net-flow-opt/mutator"
	"github.com/mikiurbi/net-flow-opt/popinit"
	"github.com/mikiurbi/net-flow-opt/system"
)

// Result is the outcome of a Run: the final generation's full population,
// its rank-0 (Pareto-optimal) front already separated out for convenience,
// and the full generation history.
type Result struct {
	Population  []*individual.Individual
	ParetoFront []*individual.Individual

	// PopulationHistory holds one entry per generation, including the
	// initial population before any mutation — length Generations+1. Each
	// entry holds copies of that generation's individuals, with Rank and
	// CrowdingDistance as computed against the pool they were selected from
	// (for entry zero, the initial population itself).
	PopulationHistory [][]*individual.Individual
}

// rankAndCrowd runs fast non-dominated sort over pop and assigns a
// crowding distance to every individual within its own front, so that
// every member of pop leaves with Rank and CrowdingDistance populated
// (not just the members of an eventual boundary/truncated front).
func rankAndCrowd(pop []*individual.Individual) ([][]*individual.Individual, error) {
	fronts, err := individual.FastNonDominatedSort(pop)
	if err != nil {
		return nil, err
	}
	for _, front := range fronts {
		individual.CrowdingDistance(front)
	}

	return fronts, nil
}

// Run executes the NSGA-II generational loop over sys and base, configured
// by opts applied on top of DefaultHyperparameters.
//
// Each generation: mutate the current population into an equally sized
// offspring set, combine parents and offspring, rank the combined pool by
// fast non-dominated sort, and fill the next generation front by front. A
// front that would overflow the target population size is sorted by
// crowding distance in descending order before being truncated, so the
// individuals kept from that boundary front are always its most isolated
// members — never an arbitrary prefix. The selected population, with the
// Rank and CrowdingDistance it was given against that generation's
// combined pool, is appended to PopulationHistory before the next
// generation begins; the initial population (before any mutation) is
// likewise ranked and appended as history entry zero, so
// PopulationHistory always has Generations+1 entries.
//
// Returns ErrInvariantViolation if a generation's selected population ever
// comes out a size other than PopulationSize, which indicates a defect in
// popinit/mutator/selection rather than a recoverable runtime condition.
func Run(sys *system.System, base []*activity.Activity, opts ...Option) (*Result, error) {
	if len(base) == 0 {
		return nil, ErrNoActivities
	}

	h := DefaultHyperparameters()
	for _, opt := range opts {
		opt(&h)
	}
	if h.PopulationSize < 2 {
		return nil, fmt.Errorf("nsga2: population size %d < 2", h.PopulationSize)
	}
	if h.Generations < 1 {
		return nil, fmt.Errorf("nsga2: generations %d < 1", h.Generations)
	}

	pop, err := popinit.Generate(sys, base, h.PopulationSize, h.Seed, h.Parallel)
	if err != nil {
		return nil, err
	}
	if _, err := rankAndCrowd(pop); err != nil {
		return nil, err
	}

	// snapshot copies the individuals of pop, so that re-ranking a survivor
	// in a later generation does not overwrite the Rank and
	// CrowdingDistance recorded for it in an earlier history entry.
	snapshot := func(pop []*individual.Individual) []*individual.Individual {
		out := make([]*individual.Individual, len(pop))
		for i, p := range pop {
			c := *p
			c.DominatedSolutions = slices.Clone(p.DominatedSolutions)
			out[i] = &c
		}

		return out
	}

	history := make([][]*individual.Individual, 0, h.Generations+1)
	history = append(history, snapshot(pop))

	for gen := 0; gen < h.Generations; gen++ {
		offspring, err := mutator.MutatePopulation(sys, base, pop, h.MutationRate, h.Seed+int64(gen+1), h.Parallel)
		if err != nil {
			return nil, err
		}

		combined := make([]*individual.Individual, 0, len(pop)+len(offspring))
		combined = append(combined, pop...)
		combined = append(combined, offspring...)

		fronts, err := rankAndCrowd(combined)
		if err != nil {
			return nil, err
		}

		next := make([]*individual.Individual, 0, h.PopulationSize)
		for _, front := range fronts {
			if len(next)+len(front) <= h.PopulationSize {
				next = append(next, front...)

				continue
			}

			sort.Slice(front, func(i, j int) bool {
				return front[i].CrowdingDistance > front[j].CrowdingDistance
			})
			remaining := h.PopulationSize - len(next)
			next = append(next, front[:remaining]...)

			break
		}

		if len(next) != h.PopulationSize {
			return nil, fmt.Errorf("%w: generation %d selected %d individuals, want %d", ErrInvariantViolation, gen, len(next), h.PopulationSize)
		}
		pop = next
		history = append(history, snapshot(pop))

		if h.OnGeneration != nil {
			h.OnGeneration(gen+1, h.Generations)
		}
	}

	var paretoFront []*individual.Individual
	for _, p := range pop {
		if p.Rank == 0 {
			paretoFront = append(paretoFront, p)
		}
	}

	return &Result{Population: pop, ParetoFront: paretoFront, PopulationHistory: history}, nil
}
