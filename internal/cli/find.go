// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jvmkit/internal/locate"
)

var (
	findFlags constraintFlags
	// findRoot searches an explicit directory instead of a resolved
	// installation.
	findRoot string
	// findMaxDepth limits the traversal; negative means unbounded.
	findMaxDepth int
	// findFirst stops at the first match.
	findFirst bool

	findCmd = &cobra.Command{
		Use:   "find <pattern>",
		Short: "Search an installation's tree for files matching a pattern",
		Long: `Search a Java installation's directory tree for files whose name
matches a shell-style wildcard pattern (*, ?).

The installation is resolved from the same constraints as the resolve
command; --root searches an explicit directory instead. Matching is
applied to the file name only and is case-sensitive on every platform.
Unreadable subdirectories are skipped.

Examples:
  jvmkit find --min 17 "*.jar"
  jvmkit find --max-depth 0 "*.txt"
  jvmkit find --first libjvm.so`,
		Args: cobra.ExactArgs(1),
		RunE: runFind,
	}
)

func init() {
	findFlags.register(findCmd)
	findCmd.Flags().StringVar(&findRoot, "root", "", "search this directory instead of a resolved installation")
	findCmd.Flags().IntVar(&findMaxDepth, "max-depth", locate.UnboundedDepth, "directory levels to descend (0 = direct children only)")
	findCmd.Flags().BoolVar(&findFirst, "first", false, "stop at the first match")
}

func runFind(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	root := findRoot
	if root == "" {
		constraint, err := findFlags.constraint()
		if err != nil {
			return err
		}
		inst := runScan(cmd.Context()).Registry.Resolve(constraint)
		if inst == nil {
			return &ExitError{Code: 1, Err: errors.New("no installation matches the given constraints")}
		}
		root = inst.Root
	}

	locator := locate.Locator{MaxDepth: findMaxDepth}
	out := cmd.OutOrStdout()

	if findFirst {
		match, found, err := locator.FindFirst(root, pattern)
		if err != nil {
			return err
		}
		if !found {
			return &ExitError{Code: 1, Err: fmt.Errorf("no file matching %q under %s", pattern, root)}
		}
		fmt.Fprintln(out, match)
		return nil
	}

	matches, err := locator.Find(root, pattern)
	if err != nil {
		return err
	}
	for _, match := range matches {
		fmt.Fprintln(out, match)
	}
	return nil
}
