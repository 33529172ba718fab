// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"jvmkit/pkg/platform"
)

// fixture describes a fake installation tree for tests.
type fixture struct {
	// banner is written to stderr when the fake launcher runs. An empty
	// banner still creates the launcher file.
	banner string
	// javac adds a compiler next to the launcher.
	javac bool
	// jre places the launcher under jre/bin instead of bin.
	jre bool
	// hang makes the launcher sleep after printing the banner, to
	// exercise probe timeouts.
	hang bool
	// release is written verbatim as the release metadata file.
	release string
}

// writeInstallation materializes fx under root, which must exist.
func writeInstallation(t *testing.T, root string, fx fixture) {
	t.Helper()

	binDir := filepath.Join(root, "bin")
	if fx.jre {
		binDir = filepath.Join(root, "jre", "bin")
	}
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatal(err)
	}

	script := "#!/bin/sh\ncat >&2 <<'BANNER'\n" + fx.banner + "\nBANNER\n"
	if fx.hang {
		script += "sleep 30\n"
	}
	if err := os.WriteFile(filepath.Join(binDir, "java"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	if fx.javac {
		if err := os.WriteFile(filepath.Join(binDir, "javac"), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if fx.release != "" {
		if err := os.WriteFile(filepath.Join(root, releaseFileName), []byte(fx.release), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// newInstallDir creates a temp directory holding fx and returns its path.
func newInstallDir(t *testing.T, fx fixture) string {
	t.Helper()
	root := t.TempDir()
	writeInstallation(t, root, fx)
	return root
}

// requireUnixShell skips tests whose fake launchers need /bin/sh.
func requireUnixShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == platform.Windows {
		t.Skip("fake launchers are shell scripts")
	}
}
