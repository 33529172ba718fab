// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resolveFlags constraintFlags
	// resolvePathOnly prints just the installation root, for scripting.
	resolvePathOnly bool

	resolveCmd = &cobra.Command{
		Use:   "resolve",
		Short: "Pick the best installation matching the given constraints",
		Long: `Scan the host and print the best Java installation matching the
given constraints. Best means highest version; version ties prefer a
JDK over a JRE.

Exits with status 1 when no installation matches.`,
		RunE: runResolve,
	}
)

func init() {
	resolveFlags.register(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolvePathOnly, "path", false, "print only the installation root")
}

func runResolve(cmd *cobra.Command, args []string) error {
	constraint, err := resolveFlags.constraint()
	if err != nil {
		return err
	}

	inst := runScan(cmd.Context()).Registry.Resolve(constraint)
	if inst == nil {
		return &ExitError{Code: 1, Err: errors.New("no installation matches the given constraints")}
	}

	out := cmd.OutOrStdout()
	if resolvePathOnly {
		fmt.Fprintln(out, inst.Root)
		return nil
	}
	fmt.Fprintf(out, "%s %s (%s, %s)\n%s\n",
		ValueStyle.Render(inst.Version.String()),
		inst.Vendor,
		inst.Kind,
		inst.Arch,
		SubtitleStyle.Render(inst.Root))
	return nil
}
