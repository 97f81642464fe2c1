// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInstallCommand creates the `jmvdev install` command.
func newInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [path]",
		Short: "Build and install a module into jamovi",
		Long: `Build and install a module into jamovi via the external compiler.

The module's declared minimum jamovi version (minApp) is checked
against the installed jamovi before the compiler is invoked; an
incompatible declaration aborts the install. The compiler's output
streams through directly and its exit status becomes jmvdev's own.

Examples:
  jmvdev install
  jmvdev install ~/modules/SuperAwesome --home /opt/jamovi`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, pathArg(args))
		},
	}

	return cmd
}

func runInstall(cmd *cobra.Command, path string) error {
	client, _, err := newCompilerClient()
	if err != nil {
		return err
	}

	if err := client.Install(cmd.Context(), path); err != nil {
		return asExitError(err)
	}

	fmt.Printf("%s Module installed\n", SuccessStyle.Render("✓"))
	return nil
}

// pathArg resolves the optional module path argument, defaulting to the
// current directory.
func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
