// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the popinit package.
package popinit

import "errors"

// ErrNoActivities is returned by Generate when the base schedule is empty.
var ErrNoActivities = errors.New("popinit: no activities to schedule")
