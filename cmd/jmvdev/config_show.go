// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"jmvdev-cli/internal/config"
	"jmvdev-cli/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `jmvdev config` command group.
func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect jmvdev configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	})

	return cmd
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfgDir, err := config.ConfigDir()
	if err != nil {
		return issue.WrapWithOperation(err, "locate configuration directory")
	}

	fmt.Println(TitleStyle.Render("Configuration"))
	fmt.Println()
	fmt.Printf("  config dir:     %s\n", PathStyle.Render(cfgDir))
	fmt.Printf("  home:           %s\n", orUnset(cfg.Home))
	fmt.Printf("  compiler:       %s\n", orUnset(cfg.Compiler))
	fmt.Printf("  r_home:         %s\n", orUnset(cfg.RHome))
	fmt.Printf("  invoke_timeout: %s\n", cfg.InvokeTimeout)
	fmt.Printf("  debug:          %t\n", cfg.Debug)

	return nil
}

func orUnset(value string) string {
	if value == "" {
		return SubtitleStyle.Render("(unset)")
	}
	return value
}
