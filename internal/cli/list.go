// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var (
	// listMajor restricts the listing to one feature release.
	listMajor int
	// listSummary switches to per-release counts.
	listSummary bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List Java installations found on this host",
		Long: `Scan the host and list every Java installation found.

Candidates come from the platform's conventional directories, the
JAVA_HOME environment variable, the executable search path, and any
extra scan roots configured in the config file. Broken candidates are
skipped; run with --verbose to see why.`,
		RunE: runList,
	}
)

func init() {
	listCmd.Flags().IntVar(&listMajor, "major", 0, "only list installations of this feature release (e.g. 17)")
	listCmd.Flags().BoolVar(&listSummary, "summary", false, "print installation counts per feature release")
}

func runList(cmd *cobra.Command, args []string) error {
	result := runScan(cmd.Context())
	reg := result.Registry
	out := cmd.OutOrStdout()

	if listSummary {
		summary := reg.Summary()
		majors := make([]int, 0, len(summary))
		for major := range summary {
			majors = append(majors, major)
		}
		slices.Sort(majors)
		for _, major := range majors {
			fmt.Fprintf(out, "%s %d\n", ValueStyle.Render(fmt.Sprintf("Java %-3d", major)), summary[major])
		}
		if len(majors) == 0 {
			fmt.Fprintln(out, SubtitleStyle.Render("no Java installations found"))
		}
		return nil
	}

	installs := reg.All()
	if listMajor > 0 {
		installs = reg.AllByMajor(listMajor)
	}
	if len(installs) == 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("no Java installations found"))
		return nil
	}

	for _, inst := range installs {
		fmt.Fprintf(out, "%s %s (%s, %s) %s\n",
			ValueStyle.Render(inst.Version.String()),
			inst.Vendor,
			inst.Kind,
			inst.Arch,
			SubtitleStyle.Render(inst.Root))
	}
	return nil
}
