// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions selects where configuration is read from. The zero value
// means the platform config directory.
type LoadOptions struct {
	// ConfigFilePath loads exactly this file; it is an error for the
	// file to be missing.
	ConfigFilePath string
	// ConfigDirPath looks for the config file in this directory instead
	// of the platform default.
	ConfigDirPath string
}

// Provider resolves a Config from load options. Commands depend on this
// interface so tests can substitute a canned configuration.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider returns the file-backed Provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads, validates and returns the configuration. A missing config
// file yields the defaults unless ConfigFilePath demanded one.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
