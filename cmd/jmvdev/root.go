// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for jmvdev.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"jmvdev-cli/internal/compiler"
	"jmvdev-cli/internal/config"
	"jmvdev-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// debug enables verbose output and forwards --debug to the compiler
	debug bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// homeFlag overrides the configured jamovi home per invocation
	homeFlag string
	// compilerFlag overrides the configured compiler executable
	compilerFlag string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "jmvdev",
		Short: "Developer tools for jamovi modules",
		Long: TitleStyle.Render("jmvdev") + SubtitleStyle.Render(" - developer tools for jamovi modules") + `

jmvdev scaffolds jamovi module sources and hands the real work
(compiling, installing, preparing) to the jamovi compiler (jmc),
which it invokes as an external process.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Scaffold a module:   jmvdev create MyModule
  2. Add an analysis:     jmvdev add linreg --title "Linear Regression"
  3. Install into jamovi: jmvdev install`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output and forward --debug to the compiler")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/jmvdev/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&homeFlag, "home", "", "jamovi installation to compile against")
	rootCmd.PersistentFlags().StringVar(&compilerFlag, "compiler", "", "path to the jamovi compiler executable")

	rootCmd.AddCommand(newCreateCommand())
	rootCmd.AddCommand(newAddCommand())
	rootCmd.AddCommand(newInstallCommand())
	rootCmd.AddCommand(newPrepareCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newConfigCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		displayError(os.Stderr, err, debug)
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// loadConfig reads the config file and layers the persistent flag overrides
// on top, producing the explicit Config every component receives.
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithSuggestion("Check the config file for YAML syntax errors").
			WithSuggestion("Run 'jmvdev config show' to see where configuration is read from").
			Wrap(err).
			BuildError()
	}

	if homeFlag != "" {
		cfg.Home = homeFlag
	}
	if compilerFlag != "" {
		cfg.Compiler = compilerFlag
	}
	if debug {
		cfg.Debug = true
	}

	return cfg, nil
}

// newCompilerClient wires a compiler client from the effective config.
func newCompilerClient() (*compiler.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	return compiler.NewClient(cfg), cfg, nil
}
