// Package systembuilder assembles example system.System topologies for
// tests and the CLI demo, the way the graph-construction half of this
// codebase's lineage assembles fixture graphs: functional options resolve
// into an immutable config, and topology constructors apply deterministic
// mutations to a freshly created System in order.
package systembuilder

import (
	"fmt"

	"github.com/mikiurbi/net-flow-opt/system"
)

// Constructor applies a deterministic topology mutation to s using the
// resolved builderConfig. Constructors must validate their own parameters
// and return sentinel errors rather than panic.
type Constructor func(s *system.System, cfg *builderConfig) error

// BuildSystem creates a new System with the given source/sink, resolves
// opts into a builderConfig, and applies every constructor in order. The
// first constructor error is wrapped and returned immediately.
func BuildSystem(source, sink string, opts []Option, cons ...Constructor) (*system.System, error) {
	cfg := newBuilderConfig(opts...)
	s := system.New(source, sink, cfg.resources)

	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildSystem: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := c(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildSystem: %w", err)
		}
	}

	return s, nil
}

func componentID(prefix string, i int) string {
	return fmt.Sprintf("%s%d", prefix, i)
}

func addComponent(s *system.System, cfg *builderConfig, id string, i int) error {
	p := cfg.params(i)

	return s.AddComponent(&system.Component{
		ID: id, Cp: p.Cp, Cc: p.Cc, Alpha: p.Alpha, Beta: p.Beta, XStar: p.XStar, PhiStar: p.PhiStar,
	})
}

// Series builds an n-component chain: source -> c0 -> c1 -> ... -> c(n-1)
// -> sink, every edge at cfg.capacity. A single component's outage cuts the
// whole system's flow to zero.
func Series(n int) Constructor {
	return func(s *system.System, cfg *builderConfig) error {
		if n < 1 {
			return ErrTooFewComponents
		}

		prev := s.Source()
		for i := 0; i < n; i++ {
			id := componentID("c", i)
			if err := addComponent(s, cfg, id, i); err != nil {
				return err
			}
			if err := s.Connect(prev, id, cfg.capacity); err != nil {
				return err
			}
			prev = id
		}

		return s.Connect(prev, s.Sink(), cfg.capacity)
	}
}

// Parallel builds n independent source->c_i->sink branches, each at
// cfg.capacity: redundant components whose outages only partially degrade
// total flow.
func Parallel(n int) Constructor {
	return func(s *system.System, cfg *builderConfig) error {
		if n < 1 {
			return ErrTooFewComponents
		}

		for i := 0; i < n; i++ {
			id := componentID("c", i)
			if err := addComponent(s, cfg, id, i); err != nil {
				return err
			}
			if err := s.Connect(s.Source(), id, cfg.capacity); err != nil {
				return err
			}
			if err := s.Connect(id, s.Sink(), cfg.capacity); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds n components each connected to both source and sink, and
// additionally interconnected pairwise by one edge c_i -> c_j for every
// i < j (a redundancy mesh rather than plain fan-out/fan-in), every edge at
// cfg.capacity.
func Complete(n int) Constructor {
	return func(s *system.System, cfg *builderConfig) error {
		if n < 2 {
			return ErrTooFewComponents
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = componentID("c", i)
			if err := addComponent(s, cfg, ids[i], i); err != nil {
				return err
			}
			if err := s.Connect(s.Source(), ids[i], cfg.capacity); err != nil {
				return err
			}
			if err := s.Connect(ids[i], s.Sink(), cfg.capacity); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := s.Connect(ids[i], ids[j], cfg.capacity); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds an rows*cols 4-neighborhood mesh of components, IDs "r,c"
// row-major: source feeds every component in row 0, every component in the
// last row feeds sink, and adjacent components within the grid are
// connected in both directions.
func Grid(rows, cols int) Constructor {
	return func(s *system.System, cfg *builderConfig) error {
		if rows < 1 || cols < 1 {
			return ErrTooFewComponents
		}

		id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
		idx := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addComponent(s, cfg, id(r, c), idx); err != nil {
					return err
				}
				idx++
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := s.Connect(id(r, c), id(r, c+1), cfg.capacity); err != nil {
						return err
					}
					if err := s.Connect(id(r, c+1), id(r, c), cfg.capacity); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := s.Connect(id(r, c), id(r+1, c), cfg.capacity); err != nil {
						return err
					}
					if err := s.Connect(id(r+1, c), id(r, c), cfg.capacity); err != nil {
						return err
					}
				}
			}
		}
		for c := 0; c < cols; c++ {
			if err := s.Connect(s.Source(), id(0, c), cfg.capacity); err != nil {
				return err
			}
			if err := s.Connect(id(rows-1, c), s.Sink(), cfg.capacity); err != nil {
				return err
			}
		}

		return nil
	}
}
