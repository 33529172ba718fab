// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects ConfigDir for tests. os.UserHomeDir
// ignores a test-set HOME on some platforms, so tests point this at a
// temp directory instead of faking the environment.
var configDirOverride string

// Reset clears the config directory override. Register it as test
// cleanup whenever SetConfigDirOverride is used.
func Reset() {
	configDirOverride = ""
}

// SetConfigDirOverride makes ConfigDir return dir until Reset.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}
