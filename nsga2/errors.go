// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the nsga2 package.
package nsga2

import "errors"

// ErrNoActivities is returned by Run when the base schedule is empty.
var ErrNoActivities = errors.New("nsga2: no activities to schedule")

// ErrInvariantViolation is a fatal error raised when a generation's
// post-truncation population size differs from PopulationSize — a bug in
// popinit/mutator/selection, not a recoverable runtime condition, so
// callers should treat it as fatal rather than retry. No separate
// post-mutation grouping check is made: the dense Slot/Resource form gives
// every activity exactly one slot by construction.
var ErrInvariantViolation = errors.New("nsga2: population invariant violated")
