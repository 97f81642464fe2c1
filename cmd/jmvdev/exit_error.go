// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"jmvdev-cli/internal/compiler"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code compiler.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// asExitError converts a compiler exit-status failure into an ExitError so
// the CLI mirrors the external process's exit code. Other errors pass
// through untouched.
func asExitError(err error) error {
	if err == nil {
		return nil
	}
	var statusErr *compiler.ExitStatusError
	if errors.As(err, &statusErr) {
		return &ExitError{Code: statusErr.Code, Err: err}
	}
	return err
}
