// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"jmvdev-cli/pkg/jmvmod"

	"github.com/spf13/cobra"
)

// newCreateCommand creates the `jmvdev create` command.
func newCreateCommand() *cobra.Command {
	var skipIgnoreFile bool

	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Scaffold a new jamovi module",
		Long: `Scaffold a new jamovi module at the given path.

The final path segment becomes the module name and must follow
naming conventions:
  - Start with a letter
  - Be at least two characters long
  - Contain only letters and digits

The parent directory must already exist; the module directory itself
must be absent or empty. After scaffolding, the jamovi compiler's
prepare operation runs so the module is immediately build-ready.

Examples:
  jmvdev create MyModule
  jmvdev create ~/modules/SuperAwesome --no-ignore-file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], !skipIgnoreFile)
		},
	}

	cmd.Flags().BoolVar(&skipIgnoreFile, "no-ignore-file", false, "skip writing the .gitignore template")

	return cmd
}

func runCreate(cmd *cobra.Command, path string, includeIgnoreFile bool) error {
	client, _, err := newCompilerClient()
	if err != nil {
		return err
	}

	scaffolder := &jmvmod.Scaffolder{Preparer: client}

	fmt.Println(TitleStyle.Render("Create Module"))

	modulePath, err := scaffolder.Create(cmd.Context(), jmvmod.CreateOptions{
		Path:              path,
		IncludeIgnoreFile: includeIgnoreFile,
	})
	if err != nil {
		return asExitError(err)
	}

	fmt.Printf("%s Module created successfully\n", SuccessStyle.Render("✓"))
	fmt.Println()
	fmt.Printf("  Path: %s\n", PathStyle.Render(modulePath))
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Printf("  1. Add an analysis: jmvdev add myanalysis --path %s\n", modulePath)
	fmt.Printf("  2. Write its implementation in %s\n", PathStyle.Render(filepath.Join(modulePath, jmvmod.SourceDirName)))
	fmt.Printf("  3. Install it: jmvdev install %s\n", modulePath)

	return nil
}
