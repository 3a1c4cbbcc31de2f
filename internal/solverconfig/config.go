package solverconfig

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SolverConfig holds unified solver configuration, loadable from a YAML
// file.
type SolverConfig struct {
	LogLevel            string `yaml:"log_level"`
	CoalesceItinerary   *bool  `yaml:"coalesce_itinerary"`
	SearchTraceDiagnostics bool `yaml:"search_trace_diagnostics"`
}

// Default returns the configuration used when no --config flag is
// given: info-level logging, itinerary coalescing on, no trace
// diagnostics.
func Default() SolverConfig {
	coalesce := true
	return SolverConfig{LogLevel: "info", CoalesceItinerary: &coalesce}
}

// Coalesce reports whether itinerary coalescing is enabled, defaulting
// to true when unset in YAML.
func (c SolverConfig) Coalesce() bool {
	if c.CoalesceItinerary == nil {
		return true
	}
	return *c.CoalesceItinerary
}

// Load reads and parses a YAML solver configuration file. Uses strict
// decoding: unrecognized keys are rejected.
func Load(path string) (*SolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading solver config: %w", err)
	}
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing solver config: %w", err)
	}
	return &cfg, nil
}

var validLogLevels = map[string]bool{
	"": true, "trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// IsValidLogLevel reports whether name is a recognized log level.
func IsValidLogLevel(name string) bool { return validLogLevels[name] }

// Validate checks that the log level is recognized.
func (c SolverConfig) Validate() error {
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q; valid options: %s", c.LogLevel, validLogLevelNames())
	}
	return nil
}

func validLogLevelNames() string {
	names := make([]string, 0, len(validLogLevels))
	for k := range validLogLevels {
		if k != "" {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
