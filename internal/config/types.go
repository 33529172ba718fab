// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the application configuration. Zero values fall back to the
// defaults from DefaultConfig at load time.
type Config struct {
	// ScanRoots are additional directories whose subdirectories are
	// probed during discovery, on top of the platform's conventional
	// locations.
	ScanRoots []string `mapstructure:"scan_roots" toml:"scan_roots"`
	// ProbeTimeout bounds a single launcher invocation during probing.
	ProbeTimeout time.Duration `mapstructure:"probe_timeout" toml:"probe_timeout"`
	// ExecTimeout bounds launcher invocations outside of probing when
	// the caller supplies no deadline of its own.
	ExecTimeout time.Duration `mapstructure:"exec_timeout" toml:"exec_timeout"`
	// ScanWorkers bounds concurrent probes during a scan.
	ScanWorkers int `mapstructure:"scan_workers" toml:"scan_workers"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

// ErrInvalidConfig is the sentinel all configuration validation errors wrap.
var ErrInvalidConfig = errors.New("invalid config")

// InvalidConfigError aggregates the validation problems of a Config.
type InvalidConfigError struct {
	Problems []error
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %v", errors.Join(e.Problems...))
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid reports whether the configuration is usable, returning every
// problem found rather than only the first.
func (c Config) IsValid() (bool, []error) {
	var problems []error
	if c.ProbeTimeout < 0 {
		problems = append(problems, fmt.Errorf("probe_timeout must not be negative, got %s", c.ProbeTimeout))
	}
	if c.ExecTimeout < 0 {
		problems = append(problems, fmt.Errorf("exec_timeout must not be negative, got %s", c.ExecTimeout))
	}
	if c.ScanWorkers < 0 {
		problems = append(problems, fmt.Errorf("scan_workers must not be negative, got %d", c.ScanWorkers))
	}
	for _, root := range c.ScanRoots {
		if root == "" {
			problems = append(problems, errors.New("scan_roots entries must not be empty"))
			break
		}
	}
	return len(problems) == 0, problems
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ProbeTimeout: 5 * time.Second,
		ExecTimeout:  5 * time.Second,
		ScanWorkers:  4,
	}
}
