// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"jvmkit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage jvmkit configuration",
	Long: `Manage jvmkit configuration.

Configuration is stored in:
  - Linux: ~/.config/jvmkit/config.toml
  - macOS: ~/Library/Application Support/jvmkit/config.toml
  - Windows: %APPDATA%\jvmkit\config.toml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
}

// showConfig renders the active configuration as TOML.
func showConfig(cmd *cobra.Command) error {
	data, err := toml.Marshal(activeConfig())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// initConfigFile writes the default configuration, refusing to clobber
// an existing file.
func initConfigFile(cmd *cobra.Command) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("created ")+path)
	return nil
}
