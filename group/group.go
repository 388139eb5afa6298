// Package group implements feasibility testing and optimal-date
// minimization for a set of co-executed maintenance Activities.
//
// A Group is transient: it exists only to run Minimize once, which sets
// its IC field and rewrites each member Activity's T in place. Holding
// onto a Group after minimization is safe (Minimize is idempotent to
// within the convergence tolerance) but callers typically discard it.
package group

import (
	"github.com/mikiurbi/net-flow-opt/activity"
)

// newtonTolerance is the convergence threshold on successive Newton
// iterates, in the same units as Activity.T.
const newtonTolerance = 1e-3

// maxNewtonIterations bounds the Newton loop; exceeding it is reported via
// Minimize's converged return value rather than as an error (see
// Minimize and §7 of the design: NonConvergence is a warning, not a fatal
// condition).
const maxNewtonIterations = 100

// Group is a set of Activities sharing one execution slot.
type Group struct {
	Activities []*activity.Activity
	// IC is the group's total indirect cost, set by Minimize.
	IC float64

	// nominal holds the members' dates as they were at the first Minimize
	// call; every call iterates from these, not from the rewritten dates.
	nominal []float64
}

// New returns a Group for the given activities after checking feasibility.
// It does not mutate any Activity; call Minimize to do that.
func New(activities []*activity.Activity) (*Group, error) {
	if len(activities) == 0 {
		return nil, ErrEmptyGroup
	}
	if !Feasible(activities) {
		return nil, ErrInfeasible
	}

	return &Group{Activities: activities}, nil
}

// Feasible reports whether activities' execution windows
// [t - x*, t + x*] share a common intersection. It is a free function so
// that mutation candidate screening (§4.6) can test a hypothetical group
// membership without constructing one.
func Feasible(activities []*activity.Activity) bool {
	if len(activities) == 0 {
		return true
	}

	earliestStart := activities[0].T - activities[0].Component.XStar
	for _, a := range activities[1:] {
		if s := a.T - a.Component.XStar; s > earliestStart {
			earliestStart = s
		}
	}
	for _, a := range activities {
		if a.T+a.Component.XStar < earliestStart {
			return false
		}
	}

	return true
}

// H returns the group's total penalty at candidate date x:
// H(x) = sum_a h_a(x - a.T).
func (g *Group) H(x float64) float64 {
	var total float64
	for _, a := range g.Activities {
		total += a.H(x - a.T)
	}

	return total
}

// dH returns H'(x).
func (g *Group) dH(x float64) float64 {
	var total float64
	for _, a := range g.Activities {
		total += a.DH(x - a.T)
	}

	return total
}

// ddH returns H''(x).
func (g *Group) ddH(x float64) float64 {
	var total float64
	for _, a := range g.Activities {
		total += a.DDH(x - a.T)
	}

	return total
}

// meanDate returns the arithmetic mean of the members' current dates, used
// both as the Newton starting point and as the non-convergence fallback.
func (g *Group) meanDate() float64 {
	var sum float64
	for _, a := range g.Activities {
		sum += a.T
	}

	return sum / float64(len(g.Activities))
}

// Minimize runs Newton iteration to find the group's optimal execution
// date, sets IC to the group's penalty there, and rewrites every member
// Activity's T to that date.
//
// If Newton fails to converge within maxNewtonIterations, Minimize falls
// back to the arithmetic-mean date (converged=false) rather than
// returning an error: the caller is expected to log this as a warning.
//
// Minimize is idempotent: calling it again leaves dates and IC unchanged,
// because every call restores the members' dates from the first call
// before iterating.
func (g *Group) Minimize() (converged bool, err error) {
	if len(g.Activities) == 0 {
		return false, ErrEmptyGroup
	}

	if len(g.nominal) != len(g.Activities) {
		g.nominal = make([]float64, len(g.Activities))
		for i, a := range g.Activities {
			g.nominal[i] = a.T
		}
	}
	for i, a := range g.Activities {
		a.T = g.nominal[i]
	}

	x := g.meanDate()
	converged = false
	for i := 0; i < maxNewtonIterations; i++ {
		second := g.ddH(x)
		if second == 0 {
			break
		}
		next := x - g.dH(x)/second
		if abs(next-x) <= newtonTolerance {
			x = next
			converged = true
			break
		}
		x = next
	}
	if !converged {
		x = g.meanDate()
	}

	g.IC = g.H(x)
	for _, a := range g.Activities {
		a.T = x
	}

	return converged, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
