// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format.
//
// Configuration is loaded from ~/.config/jvmkit/config.toml (or XDG
// equivalent on Linux, ~/Library/Application Support/jvmkit/config.toml on
// macOS, %APPDATA%\jvmkit\config.toml on Windows). The package provides
// type-safe configuration access for scan roots, probe timeouts and worker
// limits.
package config
