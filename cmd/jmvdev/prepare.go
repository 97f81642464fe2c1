// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPrepareCommand creates the `jmvdev prepare` command.
func newPrepareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare [path]",
		Short: "Regenerate a module's derived scaffolding",
		Long: `Regenerate and validate a module's derived scaffolding via the
external compiler's prepare operation, without performing a full
install.

Examples:
  jmvdev prepare
  jmvdev prepare ~/modules/SuperAwesome`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrepare(cmd, pathArg(args))
		},
	}

	return cmd
}

func runPrepare(cmd *cobra.Command, path string) error {
	client, _, err := newCompilerClient()
	if err != nil {
		return err
	}

	if err := client.Prepare(cmd.Context(), path); err != nil {
		return asExitError(err)
	}

	fmt.Printf("%s Module prepared\n", SuccessStyle.Render("✓"))
	return nil
}
