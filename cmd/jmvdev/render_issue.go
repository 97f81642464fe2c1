// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"jmvdev-cli/internal/compiler"
	"jmvdev-cli/internal/issue"
	"jmvdev-cli/pkg/jmvmod"
)

// issueFor maps well-known failure classes to their issue catalog entries.
// Returns 0 when no catalog entry applies.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return issue.CompilerNotFoundId
	case errors.Is(err, jmvmod.ErrNotAModule):
		return issue.NotAModuleId
	case errors.Is(err, jmvmod.ErrInvalidName), errors.Is(err, jmvmod.ErrReservedName):
		return issue.InvalidNameId
	case errors.Is(err, jmvmod.ErrDirectoryNotEmpty):
		return issue.DirectoryNotEmptyId
	case errors.Is(err, jmvmod.ErrAnalysisExists):
		return issue.AnalysisExistsId
	case errors.Is(err, compiler.ErrIncompatibleVersion):
		return issue.IncompatibleVersionId
	default:
		return 0
	}
}

// renderKnownIssue prints the catalog help text for recognized failures.
// Rendering problems are swallowed: the plain error is already on its way
// to the user through the normal error path.
func renderKnownIssue(stderr io.Writer, err error) {
	id := issueFor(err)
	if id == 0 {
		return
	}

	entry := issue.Get(id)
	if entry == nil {
		return
	}

	rendered, renderErr := entry.Render("dark")
	if renderErr != nil {
		return
	}
	fmt.Fprint(stderr, rendered)
}

// formatErrorForDisplay renders an error for the terminal, expanding
// actionable errors with their suggestions.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// displayError is the terminal error path run after command execution fails.
// Actionable errors carrying suggestions are expanded (the plain message has
// already been printed by the command framework), then any matching issue
// catalog entry is rendered.
func displayError(stderr io.Writer, err error, verbose bool) {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) && actionable.HasSuggestions() {
		fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	}
	renderKnownIssue(stderr, err)
}
