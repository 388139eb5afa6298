// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the plan package.
package plan

import "errors"

// ErrLengthMismatch is returned by New when Slot/Resource don't each have
// exactly one entry per Activity.
var ErrLengthMismatch = errors.New("plan: slot/resource length does not match activity count")

// ErrResourceOutOfRange is returned by New when a Resource entry falls
// outside [0, resources).
var ErrResourceOutOfRange = errors.New("plan: resource index out of range")
