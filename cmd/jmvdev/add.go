// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"jmvdev-cli/pkg/jmvmod"

	"github.com/spf13/cobra"
)

// newAddCommand creates the `jmvdev add` command.
func newAddCommand() *cobra.Command {
	var (
		addTitle string
		addPath  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an analysis to a jamovi module",
		Long: `Add an analysis to an existing jamovi module.

Two manifest files are created in the module's jamovi directory: an
options declaration (<name>.a.yaml) and a results declaration
(<name>.r.yaml). The analysis name follows the same naming rules as
module names; the title defaults to the name.

Examples:
  jmvdev add linreg --title "Linear Regression"
  jmvdev add anova --path ~/modules/SuperAwesome`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], addTitle, addPath)
		},
	}

	cmd.Flags().StringVarP(&addTitle, "title", "t", "", "analysis title (default: the analysis name)")
	cmd.Flags().StringVarP(&addPath, "path", "p", ".", "module directory to add the analysis to")

	return cmd
}

func runAdd(cmd *cobra.Command, name, title, path string) error {
	client, _, err := newCompilerClient()
	if err != nil {
		return err
	}

	scaffolder := &jmvmod.Scaffolder{Preparer: client}

	err = scaffolder.AddAnalysis(cmd.Context(), jmvmod.AddAnalysisOptions{
		Name:  name,
		Title: title,
		Path:  path,
	})
	if err != nil {
		return asExitError(err)
	}

	base := strings.ToLower(name)
	fmt.Printf("%s Analysis %s created\n", SuccessStyle.Render("✓"), name)
	fmt.Printf("  %s\n", PathStyle.Render(base+jmvmod.OptionsSuffix))
	fmt.Printf("  %s\n", PathStyle.Render(base+jmvmod.ResultsSuffix))

	return nil
}
