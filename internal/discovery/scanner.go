// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"runtime"
)

// Scanner enumerates candidate installation roots for one platform. The
// zero value is not usable; construct with NewScanner. All fields are
// injectable so tests can run against fake directory trees and
// environments.
type Scanner struct {
	// GOOS selects the platform table entry, runtime.GOOS by default.
	GOOS string
	// Roots overrides the conventional root table when non-nil.
	Roots map[string][]string
	// ExtraRoots are additional directories scanned like conventional
	// roots (their subdirectories become candidates).
	ExtraRoots []string
	// Getenv resolves environment variables, os.Getenv by default.
	Getenv func(string) string
}

// NewScanner returns a Scanner for the current platform and environment.
func NewScanner() *Scanner {
	return &Scanner{GOOS: runtime.GOOS, Getenv: os.Getenv}
}

// Candidates returns deduplicated, symlink-resolved absolute candidate
// roots in discovery order: the Java home variable first, then
// conventional and extra directories, then launcher locations on the
// executable search path. Missing or unreadable directories are silently
// skipped; absence is expected, not exceptional.
func (s *Scanner) Candidates() []string {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(root string) {
		root = s.normalizeRoot(root)
		if root == "" {
			return
		}
		if _, dup := seen[root]; dup {
			return
		}
		seen[root] = struct{}{}
		out = append(out, root)
	}

	// 1. JAVA_HOME is the most authoritative source.
	if home := getenv(JavaHomeEnv); home != "" {
		add(home)
	}

	// 2. Subdirectories of conventional (and configured) roots.
	table := s.Roots
	if table == nil {
		table = conventionalRoots
	}
	roots := append([]string{}, table[goos]...)
	roots = append(roots, s.ExtraRoots...)
	for _, root := range roots {
		root = expandEnvRefs(root, getenv)
		if root == "" {
			continue
		}
		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() && entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			add(filepath.Join(root, entry.Name()))
		}
	}

	// 3. Launcher binaries reachable via PATH, mapped back to their
	// installation roots.
	launcher := launcherName(goos)
	for _, dir := range filepath.SplitList(getenv("PATH")) {
		if dir == "" {
			continue
		}
		exe := filepath.Join(dir, launcher)
		if _, err := os.Stat(exe); err != nil {
			continue
		}
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		// <root>/bin/java -> <root>
		add(filepath.Dir(filepath.Dir(exe)))
	}

	return out
}

// normalizeRoot resolves symlinks, makes the path absolute, and unwraps
// the macOS bundle layout so /x/foo.jdk and /x/foo.jdk/Contents/Home
// dedup to the same identity. Returns "" for unusable paths.
func (s *Scanner) normalizeRoot(root string) string {
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return ""
	}
	bundle := filepath.Join(abs, "Contents", "Home")
	if info, err := os.Stat(bundle); err == nil && info.IsDir() {
		return bundle
	}
	return abs
}
