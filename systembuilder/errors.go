// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the systembuilder package.
package systembuilder

import "errors"

// ErrTooFewComponents is returned by a topology constructor when asked for
// fewer components than the topology requires.
var ErrTooFewComponents = errors.New("systembuilder: too few components for topology")

// ErrNilConstructor is returned by BuildSystem when a nil Constructor is
// passed, to fail fast rather than panic during application.
var ErrNilConstructor = errors.New("systembuilder: nil constructor")
