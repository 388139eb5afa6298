// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options resolving into an immutable builderConfig,
// mirroring the graph-builder pattern this package is adapted from.
package systembuilder

import "math/rand"

// ComponentParams returns the cost-model parameters for the i-th component
// a topology constructor creates.
type ComponentParams struct {
	Cp, Cc, Alpha, Beta, XStar, PhiStar float64
}

// ComponentParamsFn produces ComponentParams for component index i.
type ComponentParamsFn func(i int) ComponentParams

// DefaultComponentParams returns a fixed, topology-independent parameter
// set: a mildly convex Weibull-like cost curve.
func DefaultComponentParams(_ int) ComponentParams {
	return ComponentParams{Cp: 1, Cc: 10, Alpha: 1, Beta: 2, XStar: 10, PhiStar: 1}
}

// Option customizes the behavior of a topology Constructor. As a rule,
// option constructors never panic and ignore nil inputs.
type Option func(cfg *builderConfig)

// builderConfig holds the configurable parameters shared by every topology
// constructor. It is not safe for concurrent mutation; each BuildSystem
// call resolves its own.
type builderConfig struct {
	rng       *rand.Rand
	resources int
	capacity  float64
	params    ComponentParamsFn
}

func newBuilderConfig(opts ...Option) *builderConfig {
	cfg := &builderConfig{
		rng:       nil,
		resources: 1,
		capacity:  5,
		params:    DefaultComponentParams,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithResources sets the number of parallel repair crews the System is
// built with.
func WithResources(n int) Option {
	return func(cfg *builderConfig) {
		if n > 0 {
			cfg.resources = n
		}
	}
}

// WithCapacity sets the default edge capacity topology constructors use.
func WithCapacity(c float64) Option {
	return func(cfg *builderConfig) {
		if c > 0 {
			cfg.capacity = c
		}
	}
}

// WithComponentParams injects a custom ComponentParamsFn.
func WithComponentParams(fn ComponentParamsFn) Option {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.params = fn
		}
	}
}

// WithSeed seeds the RNG used by stochastic topology constructors (none
// currently require one, but Grid/Complete variants may in the future).
func WithSeed(seed int64) Option {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
