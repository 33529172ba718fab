// SPDX-License-Identifier: MPL-2.0

// Package locate searches installation trees for files matching
// shell-style wildcard patterns.
//
// Patterns are matched against the final path segment only (the entry
// name, not the full relative path), with filepath.Match semantics.
// Matching is case-sensitive on every platform, including filesystems
// that are themselves case-insensitive. Traversal is depth-first and
// supports bounded depth and early termination.
package locate

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"jvmkit/pkg/java"
	"jvmkit/pkg/platform"
)

// UnboundedDepth disables the depth limit.
const UnboundedDepth = -1

// Locator searches directory trees. Construct with New; the zero value
// restricts matches to direct children.
type Locator struct {
	// MaxDepth limits how many directory levels below the search root
	// are entered: 0 matches direct children only, 1 adds their
	// children, and so on. UnboundedDepth removes the limit.
	MaxDepth int
}

// New returns a Locator with no depth limit.
func New() Locator {
	return Locator{MaxDepth: UnboundedDepth}
}

// Find returns the absolute paths under root whose name matches pattern,
// in depth-first lexical order. Unreadable subdirectories are skipped
// by omission; a missing or unreadable root is a hard error. No match
// yields an empty result, not an error.
func (l Locator) Find(root, pattern string) ([]string, error) {
	var out []string
	err := l.walk(root, pattern, func(path string) bool {
		out = append(out, path)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindFirst returns the first match under root, stopping the traversal
// as soon as one is found. The second result reports whether a match
// exists.
func (l Locator) FindFirst(root, pattern string) (string, bool, error) {
	var match string
	found := false
	err := l.walk(root, pattern, func(path string) bool {
		match = path
		found = true
		return false
	})
	if err != nil {
		return "", false, err
	}
	return match, found, nil
}

// walk drives the traversal, calling visit for every match until visit
// returns false or the tree is exhausted.
func (l Locator) walk(root, pattern string, visit func(path string) bool) error {
	// Surface malformed patterns before touching the filesystem.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("search root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("search root %s is not a directory", root)
	}

	return filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Unreadable subtrees are omitted, not fatal.
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator))

		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			if !visit(path) {
				return filepath.SkipAll
			}
		}
		if d.IsDir() && l.MaxDepth >= 0 && depth >= l.MaxDepth {
			return filepath.SkipDir
		}
		return nil
	})
}

// Find searches inst's tree for pattern with no depth limit.
func Find(inst *java.Installation, pattern string) ([]string, error) {
	return New().Find(inst.Root, pattern)
}

// JVMLibraryName returns the platform's JVM shared library file name.
func JVMLibraryName(goos string) string {
	switch goos {
	case platform.Windows:
		return "jvm.dll"
	case platform.Darwin:
		return "libjvm.dylib"
	default:
		return "libjvm.so"
	}
}

// LocateJVMLibrary finds the JVM shared library inside inst, the usual
// input for embedding the runtime via JNI.
func LocateJVMLibrary(inst *java.Installation) (string, bool, error) {
	return New().FindFirst(inst.Root, JVMLibraryName(runtime.GOOS))
}

// docDirNames are the directories JDK images conventionally ship
// documentation and license material in.
var docDirNames = []string{"docs", "doc", "legal", "man"}

// LocateDocs returns the documentation directories present directly
// under inst's root, in conventional-name order.
func LocateDocs(inst *java.Installation) []string {
	var out []string
	for _, name := range docDirNames {
		dir := filepath.Join(inst.Root, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			out = append(out, dir)
		}
	}
	return out
}
