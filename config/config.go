// Package config loads and validates a per-solve run configuration: the
// grid shape, spacing, craft derating, reliability tolerance, and
// departure time, surfaced from a YAML file so a solve can be driven
// without recompiling.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for configuration validation.
var (
	ErrInvalidGridShape  = errors.New("config: rank and width must each be at least 1")
	ErrInvalidSpacing    = errors.New("config: d_node must be positive")
	ErrInvalidPerfFactor = errors.New("config: perf_factor must be in [0, 1]")
	ErrInvalidTolerance  = errors.New("config: reliability_tolerance must be in [0, 1]")
)

// Run is the top-level configuration for one solve, mirroring spec.md
// §6's per-solve configuration knobs.
type Run struct {
	Rank                int     `yaml:"rank"`
	Width               int     `yaml:"width"`
	DNodeMeters         float64 `yaml:"d_node_meters"`
	PerfFactor          float64 `yaml:"perf_factor,omitempty"`
	ReliabilityTol      float64 `yaml:"reliability_tolerance,omitempty"`
	DepartureTimeUnix   float64 `yaml:"departure_time_unix,omitempty"`
	LifetimeDecayRate   float64 `yaml:"lifetime_decay_rate,omitempty"`
	ParallelRanks       int     `yaml:"parallel_ranks,omitempty"`
	PolarTablePath      string  `yaml:"polar_table_path,omitempty"`
	PolarTableDelimiter string  `yaml:"polar_table_delimiter,omitempty"`

	Start Point `yaml:"start"`
	End   Point `yaml:"end"`
}

// Point is a YAML-friendly (lon, lat) pair, kept distinct from
// geo.Location so this package does not need to import geo just to
// describe a configuration file's shape.
type Point struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// DefaultRun returns a Run with sensible defaults: unit perf_factor, zero
// reliability tolerance (strictest), no lifetime decay, sequential
// solving.
func DefaultRun() Run {
	return Run{
		PerfFactor:          1.0,
		ReliabilityTol:      0.0,
		ParallelRanks:       1,
		PolarTableDelimiter: ",",
	}
}

// Validate checks the run configuration's invariants, matching the
// construction-time validation order used across this module's other
// packages (grid, polar, failure): shape, then spacing, then the two
// derating/tolerance fractions.
func (r Run) Validate() error {
	if r.Rank < 1 || r.Width < 1 {
		return ErrInvalidGridShape
	}
	if r.DNodeMeters <= 0 {
		return ErrInvalidSpacing
	}
	if r.PerfFactor < 0 || r.PerfFactor > 1 {
		return ErrInvalidPerfFactor
	}
	if r.ReliabilityTol < 0 || r.ReliabilityTol > 1 {
		return ErrInvalidTolerance
	}
	return nil
}

// Load reads and validates a Run from a YAML file at path, filling
// unset fields from DefaultRun first.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}
