// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCheckCommand creates the `jmvdev check` command.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the jamovi compiler installation",
		Long: `Ask the external compiler to report on itself and the jamovi
installation it can find. Also prints the jamovi version jmvdev
discovered for its own compatibility checks.

Examples:
  jmvdev check
  jmvdev check --compiler /usr/local/bin/jmc`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	client, _, err := newCompilerClient()
	if err != nil {
		return err
	}

	if err := client.Check(cmd.Context()); err != nil {
		return asExitError(err)
	}

	version := client.InstalledVersion(cmd.Context())
	fmt.Println()
	fmt.Printf("%s jamovi %s available\n", SuccessStyle.Render("✓"), version)

	return nil
}
