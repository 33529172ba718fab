// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"jvmkit/pkg/java"
)

// constraintFlags binds the installation-selection flags shared by the
// resolve, exec, and find commands.
type constraintFlags struct {
	minVersion string
	maxVersion string
	vendor     string
	arch       string
	kind       string
}

// register adds the selection flags to cmd.
func (f *constraintFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.minVersion, "min", "", "minimum Java version (inclusive), e.g. 17 or 1.8.0_300")
	cmd.Flags().StringVar(&f.maxVersion, "max", "", "maximum Java version (inclusive)")
	cmd.Flags().StringVar(&f.vendor, "vendor", "", "vendor substring match, case-insensitive (e.g. temurin)")
	cmd.Flags().StringVar(&f.arch, "arch", "", "CPU architecture (x86, x86_64, arm32, aarch64)")
	cmd.Flags().StringVar(&f.kind, "kind", "", "installation kind (jdk or jre)")
}

// constraint converts the flag values into a search constraint,
// rejecting tokens that parse to nothing rather than silently matching
// everything.
func (f *constraintFlags) constraint() (java.Constraint, error) {
	c := java.Constraint{Vendor: f.vendor}

	if f.minVersion != "" {
		v, err := java.ParseVersion(f.minVersion)
		if err != nil {
			return c, fmt.Errorf("invalid --min: %w", err)
		}
		c.MinVersion = &v
	}
	if f.maxVersion != "" {
		v, err := java.ParseVersion(f.maxVersion)
		if err != nil {
			return c, fmt.Errorf("invalid --max: %w", err)
		}
		c.MaxVersion = &v
	}
	if f.arch != "" {
		arch := java.ParseArchitecture(f.arch)
		if arch == java.ArchUnknown {
			return c, fmt.Errorf("invalid --arch %q", f.arch)
		}
		c.Arch = arch
	}
	switch f.kind {
	case "":
	case string(java.KindJDK):
		c.Kind = java.KindJDK
	case string(java.KindJRE):
		c.Kind = java.KindJRE
	default:
		return c, fmt.Errorf("invalid --kind %q, want jdk or jre", f.kind)
	}

	return c, nil
}
