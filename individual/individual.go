// Package individual implements the NSGA-II bookkeeping layer: wrapping an
// evaluated plan.Plan with the rank, crowding distance, and dominance
// bookkeeping the generational loop needs, plus the two ranking primitives
// (fast non-dominated sort and crowding distance) that operate on it.
package individual

import (
	"math"
	"sort"

	"github.com/mikiurbi/net-flow-opt/plan"
)

// Individual is one evaluated candidate schedule plus the bookkeeping
// NSGA-II's selection machinery accumulates on top of it. The bookkeeping
// fields are reset and repopulated by FastNonDominatedSort and
// CrowdingDistance on every generation; callers should not rely on their
// values surviving between sort calls on different populations.
type Individual struct {
	Plan *plan.Plan

	// Rank is the index of the non-dominated front this individual belongs
	// to, 0 being the best (Pareto-optimal) front.
	Rank int
	// CrowdingDistance measures this individual's isolation within its
	// front; larger is more isolated and thus preferred when truncating.
	CrowdingDistance float64

	// DominatedSolutions holds every individual this one dominates.
	DominatedSolutions []*Individual
	// DominationCount is the number of individuals that dominate this one.
	DominationCount int
}

// New wraps p as a fresh Individual with zeroed bookkeeping.
func New(p *plan.Plan) *Individual {
	return &Individual{Plan: p}
}

// Dominates reports whether a dominates b under the package's dominance
// predicate: a dominates b iff a strictly improves both objectives, LF and
// IC, simultaneously. This is a stricter rule than the textbook NSGA-II
// predicate (weakly better on every objective, strictly better on at least
// one) — deliberately, to avoid collapsing the front around single-
// objective extremes when LF and IC are on very different scales.
func Dominates(a, b *Individual) bool {
	aLF, aIC := a.Plan.Objectives()
	bLF, bIC := b.Plan.Objectives()

	return aLF < bLF && aIC < bIC
}

// FastNonDominatedSort partitions pop into non-dominated fronts, setting
// Rank and DominatedSolutions/DominationCount on every individual as a
// side effect, and returns the fronts in ascending rank order.
//
// Complexity: O(M*N^2) for M objectives (fixed at 2 here) and N
// individuals, the standard NSGA-II bound.
func FastNonDominatedSort(pop []*Individual) ([][]*Individual, error) {
	if len(pop) == 0 {
		return nil, ErrEmptyPopulation
	}

	for _, p := range pop {
		p.DominatedSolutions = p.DominatedSolutions[:0]
		p.DominationCount = 0
	}

	var first []*Individual
	for _, p := range pop {
		for _, q := range pop {
			if p == q {
				continue
			}
			switch {
			case Dominates(p, q):
				p.DominatedSolutions = append(p.DominatedSolutions, q)
			case Dominates(q, p):
				p.DominationCount++
			}
		}
		if p.DominationCount == 0 {
			p.Rank = 0
			first = append(first, p)
		}
	}

	fronts := [][]*Individual{first}
	for i := 0; len(fronts[i]) > 0; i++ {
		var next []*Individual
		for _, p := range fronts[i] {
			for _, q := range p.DominatedSolutions {
				q.DominationCount--
				if q.DominationCount == 0 {
					q.Rank = i + 1
					next = append(next, q)
				}
			}
		}
		fronts = append(fronts, next)
	}

	// The loop above always appends one trailing empty front as its stop
	// condition; drop it.
	return fronts[:len(fronts)-1], nil
}

// CrowdingDistance sets each individual's CrowdingDistance field within the
// given front (a single non-dominated front, as produced by
// FastNonDominatedSort) and returns the same slice for chaining. Boundary
// individuals (extremes of either objective) receive +Inf so that
// truncation never discards an extreme of the front.
func CrowdingDistance(front []*Individual) []*Individual {
	n := len(front)
	if n == 0 {
		return front
	}
	for _, p := range front {
		p.CrowdingDistance = 0
	}
	if n <= 2 {
		for _, p := range front {
			p.CrowdingDistance = math.Inf(1)
		}

		return front
	}

	assignCrowding(front, func(p *Individual) float64 { lf, _ := p.Plan.Objectives(); return lf })
	assignCrowding(front, func(p *Individual) float64 { _, ic := p.Plan.Objectives(); return ic })

	return front
}

func assignCrowding(front []*Individual, objective func(*Individual) float64) {
	n := len(front)
	ordered := append([]*Individual(nil), front...)
	sort.Slice(ordered, func(i, j int) bool { return objective(ordered[i]) < objective(ordered[j]) })

	lo, hi := objective(ordered[0]), objective(ordered[n-1])
	ordered[0].CrowdingDistance = math.Inf(1)
	ordered[n-1].CrowdingDistance = math.Inf(1)
	if hi == lo {
		return
	}

	for i := 1; i < n-1; i++ {
		if math.IsInf(ordered[i].CrowdingDistance, 1) {
			continue
		}
		ordered[i].CrowdingDistance += (objective(ordered[i+1]) - objective(ordered[i-1])) / (hi - lo)
	}
}
