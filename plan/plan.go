// Package plan binds a GroupingStructure to a System's Activities and
// evaluates the resulting maintenance schedule's two objectives: lost flow
// (LF) and total indirect cost (IC).
//
// A GroupingStructure is represented densely rather than as the (N,N,R)
// binary tensor one might first reach for: Slot[i] names which group
// activity i belongs to (activities sharing a Slot value are minimized
// jointly, as one group.Group) and Resource[i] names which repair crew
// executes activity i. The dense form is O(N) instead of O(N^2*R) and is
// what popinit and mutator both produce and consume directly.
package plan

import (
	"fmt"

	"github.com/mikiurbi/net-flow-opt/activity"
	"github.com/mikiurbi/net-flow-opt/evaluator"
	"github.com/mikiurbi/net-flow-opt/group"
	"github.com/mikiurbi/net-flow-opt/system"
)

// Plan is one fully evaluated maintenance schedule: a GroupingStructure
// applied to a System's components, with every group minimized and the
// resulting flow loss computed.
type Plan struct {
	System *system.System

	// Activities holds one entry per component, in the same order as Slot
	// and Resource. Unlike the caller's input activities, these are private
	// copies whose T has been rewritten to each group's optimal date — Plan
	// never mutates activities it did not clone itself, so the same base
	// schedule can be evaluated under many candidate GroupingStructures
	// concurrently.
	Activities []*activity.Activity

	// Slot[i] is the execution group of Activities[i]; activities sharing a
	// Slot value are co-executed and minimized as one group.Group.
	Slot []int
	// Resource[i] is the repair crew assigned to Activities[i].
	Resource []int

	// LF is total lost flow, integrated over the schedule's timeline.
	LF float64
	// IC is total indirect cost, summed across every group.
	IC float64

	// Warnings holds one message per group slot whose Newton minimization
	// did not converge within tolerance (see group.Minimize); that slot's IC
	// is evaluated at the arithmetic-mean fallback date. An empty slice
	// means every slot converged cleanly.
	Warnings []string
}

// New builds and evaluates a Plan: it clones base (so minimization never
// mutates the caller's activities), partitions the clones by Slot into
// groups, minimizes each group in turn, sums their IC, and finally computes
// LF over the resulting schedule.
//
// len(slot) and len(resource) must equal len(base); every resource entry
// must be in [0, sys.Resources()).
func New(sys *system.System, base []*activity.Activity, slot, resource []int) (*Plan, error) {
	if len(slot) != len(base) || len(resource) != len(base) {
		return nil, ErrLengthMismatch
	}
	for _, r := range resource {
		if r < 0 || r >= sys.Resources() {
			return nil, fmt.Errorf("%d: %w", r, ErrResourceOutOfRange)
		}
	}

	clones := make([]*activity.Activity, len(base))
	for i, a := range base {
		clones[i] = activity.New(a.Component, a.T, a.D)
	}

	groups := make(map[int][]*activity.Activity)
	order := make([]int, 0)
	for i, s := range slot {
		if _, seen := groups[s]; !seen {
			order = append(order, s)
		}
		groups[s] = append(groups[s], clones[i])
	}

	var totalIC float64
	var warnings []string
	for _, s := range order {
		members := groups[s]
		g, err := group.New(members)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", s, err)
		}
		converged, err := g.Minimize()
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", s, err)
		}
		if !converged {
			warnings = append(warnings, fmt.Sprintf("slot %d: Newton iteration did not converge within tolerance, falling back to mean date", s))
		}
		totalIC += g.IC
	}

	lf, err := evaluator.LostFlow(sys, clones)
	if err != nil {
		return nil, err
	}

	return &Plan{
		System:     sys,
		Activities: clones,
		Slot:       append([]int(nil), slot...),
		Resource:   append([]int(nil), resource...),
		LF:         lf,
		IC:         totalIC,
		Warnings:   warnings,
	}, nil
}

// Objectives returns the Plan's (LF, IC) pair, the two quantities NSGA-II
// minimizes.
func (p *Plan) Objectives() (lf, ic float64) {
	return p.LF, p.IC
}
