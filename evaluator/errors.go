// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the evaluator package.
package evaluator

import "errors"

// ErrNoActivities is returned by LostFlow when called with an empty
// schedule: there is nothing to integrate over.
var ErrNoActivities = errors.New("evaluator: no activities")
