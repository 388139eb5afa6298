// Package config loads pmopt's run configuration from defaults, an
// optional YAML file, and environment variables, in that priority order —
// the same three-tier precedence koanf-based services in this codebase's
// lineage use, trimmed down to the knobs a single-process optimizer run
// actually needs (no transport, tracing, or service-discovery sections).
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is stripped from, and dictates the casing convention of,
// environment variables that override config keys:
// PMOPT_NSGA2_POPULATION_SIZE becomes nsga2.population_size.
const envPrefix = "PMOPT_"

// Config is pmopt's full run configuration.
type Config struct {
	Topology struct {
		Kind       string `koanf:"kind"` // series, parallel, complete, grid
		Components int    `koanf:"components"`
		Resources  int    `koanf:"resources"`
		Capacity   float64 `koanf:"capacity"`
		// Rows/Cols are only consulted when Kind is "grid".
		Rows int `koanf:"rows"`
		Cols int `koanf:"cols"`
	} `koanf:"topology"`

	NSGA2 struct {
		PopulationSize int     `koanf:"population_size"`
		Generations    int     `koanf:"generations"`
		MutationRate   float64 `koanf:"mutation_rate"`
		Seed           int64   `koanf:"seed"`
		Parallel       bool    `koanf:"parallel"`
	} `koanf:"nsga2"`

	Log struct {
		Level  string `koanf:"level"`  // debug, info, warn, error
		Format string `koanf:"format"` // json, text
	} `koanf:"log"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"topology.kind":       "parallel",
		"topology.components": 8,
		"topology.resources":  2,
		"topology.capacity":   5.0,
		"topology.rows":       3,
		"topology.cols":       3,

		"nsga2.population_size": 50,
		"nsga2.generations":     100,
		"nsga2.mutation_rate":   0.1,
		"nsga2.seed":            1,
		"nsga2.parallel":        false,

		"log.level":  "info",
		"log.format": "text",
	}
}

// Load builds a Config from defaults, then path (skipped entirely when
// empty — the config file is optional, unlike a path the caller actually
// named), then environment variables prefixed with PMOPT_.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyToConfigKey), nil); err != nil {
		return nil, fmt.Errorf("config: environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	return &cfg, nil
}

// envKeyToConfigKey maps PMOPT_NSGA2_POPULATION_SIZE to
// nsga2.population_size: only the first underscore becomes the section
// separator, since every leaf key here is itself one or more
// underscore-joined words.
func envKeyToConfigKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if i := strings.IndexByte(s, '_'); i >= 0 {
		return s[:i] + "." + s[i+1:]
	}

	return s
}
