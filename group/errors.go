// SPDX-License-Identifier: MIT
// Package: netflowopt/group
//
// errors.go — sentinel errors for the group package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Mutation candidate filtering and initial-population construction
//     screen candidates with Feasible, so they never receive ErrInfeasible;
//     it reaches callers only through New (e.g. via plan.New) when given
//     an infeasible grouping.
package group

import "errors"

// ErrInfeasible is returned by New when the supplied activities' execution
// windows do not share a common intersection (see Feasible).
var ErrInfeasible = errors.New("group: activities are not jointly feasible")

// ErrEmptyGroup is returned by New and Minimize when called with no
// activities; a group must have at least one member.
var ErrEmptyGroup = errors.New("group: no activities")
