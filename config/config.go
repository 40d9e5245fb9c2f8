// Package config holds the towersolve settings: defaults, an optional YAML file,
// and command-line flags, applied in that order.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/towercover/solver"
)

// Sentinel errors for option validation and loading.
var (
	// ErrInvalidOption is returned by Validate for an out-of-range field.
	ErrInvalidOption = errors.New("config: invalid option")
	// ErrConfigFile is returned by LoadFile when the file cannot be decoded.
	ErrConfigFile = errors.New("config: cannot parse config file")
)

// Options contains configuration shared by the towersolve commands.
type Options struct {
	// Strategy selects the placement algorithm.
	Strategy solver.Strategy `json:"strategy"`
	// MaxIterations caps greedy iterations; 0 means unlimited.
	MaxIterations int `json:"maxIterations"`

	// ArchivePath is a SQLite file keeping the best solution per instance; empty disables it.
	ArchivePath string `json:"archivePath"`
	// MetricsFile receives Prometheus metrics in textfile format after a run; empty disables it.
	MetricsFile string `json:"metricsFile"`

	// Workers bounds concurrent solves in batch mode.
	Workers int `json:"workers"`
	// OutDir receives "<name>.out" files in batch mode.
	OutDir string `json:"outDir"`
}

// NewOptions returns Options with default values.
func NewOptions() *Options {
	return &Options{
		Strategy:      solver.Greedy,
		MaxIterations: 0,
		ArchivePath:   "",
		MetricsFile:   "",
		Workers:       4,
		OutDir:        "outputs",
	}
}

// AddFlags binds the options to fs. Flag defaults are the current field values,
// so call it after LoadFile if a file should provide defaults.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.Var(&o.Strategy, "solver",
		fmt.Sprintf("Placement strategy, one of %v", solver.Names()))
	fs.IntVar(&o.MaxIterations, "max-iterations", o.MaxIterations,
		"Maximum greedy iterations (0 = unlimited)")
	fs.StringVar(&o.ArchivePath, "archive", o.ArchivePath,
		"SQLite file keeping the best solution per instance")
	fs.StringVar(&o.MetricsFile, "metrics-file", o.MetricsFile,
		"Write Prometheus metrics to this file after the run")
	fs.IntVar(&o.Workers, "workers", o.Workers,
		"Number of instances solved concurrently in batch mode")
	fs.StringVar(&o.OutDir, "out-dir", o.OutDir,
		"Directory receiving batch outputs")
}

// Validate validates the options. Every error wraps ErrInvalidOption.
func (o *Options) Validate() error {
	if _, err := o.Strategy.MarshalText(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: max-iterations must not be negative (%d)", ErrInvalidOption, o.MaxIterations)
	}
	if o.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidOption, o.Workers)
	}
	if o.OutDir == "" {
		return fmt.Errorf("%w: out-dir must not be empty", ErrInvalidOption)
	}
	return nil
}

// LoadFile overlays the YAML (or JSON) document at path onto o. Keys absent from
// the file keep their current values. An empty path is a no-op.
func (o *Options) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(data, o); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigFile, path, err)
	}
	return nil
}
