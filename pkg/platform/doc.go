// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the runtime.GOOS string constants so that
// platform branching (conventional scan roots, launcher file names,
// configuration directories) reads consistently across the codebase.
package platform
