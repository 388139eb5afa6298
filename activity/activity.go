// Package activity implements the per-component maintenance cost model: a
// pure function of a Component's Weibull-like cost parameters and an
// execution offset from its individually optimal age.
//
// The penalty h(Δt) and its first two derivatives are closed-form, which
// is what lets Group (see the sibling package) find a group's optimal
// execution date by Newton iteration instead of a derivative-free search.
package activity

import (
	"math"

	"github.com/mikiurbi/net-flow-opt/system"
)

// Activity is a single maintenance task bound to a Component. T is mutable:
// Group.Minimize rewrites it to the group's optimal execution date.
type Activity struct {
	// Component is the component this activity maintains.
	Component *system.Component
	// T is the activity's execution date (nominal until a Group
	// minimization rewrites it).
	T float64
	// D is the activity's duration. Invariant: D >= 0.
	D float64
}

// New returns an Activity for component c due at date t with duration d.
func New(c *system.Component, t, d float64) *Activity {
	return &Activity{Component: c, T: t, D: d}
}

// expectedCost returns C(x) = cp + cc*(x/alpha)^beta, the component's
// expected lifecycle cost if executed at age x.
func (a *Activity) expectedCost(x float64) float64 {
	c := a.Component

	return c.Cp + c.Cc*math.Pow(x/c.Alpha, c.Beta)
}

// H returns the penalty of executing the activity at offset deltaT from
// the component's individually optimal age x*:
//
//	h(Δt) = C(x*+Δt) - C(x*) - Δt*phi*
func (a *Activity) H(deltaT float64) float64 {
	c := a.Component

	return a.expectedCost(c.XStar+deltaT) - a.expectedCost(c.XStar) - deltaT*c.PhiStar
}

// DH returns h'(Δt) = cc*alpha^-beta*beta*(x*+Δt)^(beta-1) - phi*.
func (a *Activity) DH(deltaT float64) float64 {
	c := a.Component

	return c.Cc*math.Pow(c.Alpha, -c.Beta)*c.Beta*math.Pow(c.XStar+deltaT, c.Beta-1) - c.PhiStar
}

// DDH returns h''(Δt) = cc*alpha^-beta*beta*(beta-1)*(x*+Δt)^(beta-2).
func (a *Activity) DDH(deltaT float64) float64 {
	c := a.Component

	return c.Cc * math.Pow(c.Alpha, -c.Beta) * c.Beta * (c.Beta - 1) * math.Pow(c.XStar+deltaT, c.Beta-2)
}
