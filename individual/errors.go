// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the individual package.
package individual

import "errors"

// ErrEmptyPopulation is returned by FastNonDominatedSort when called with
// no individuals.
var ErrEmptyPopulation = errors.New("individual: empty population")
