// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// ErrSubprocessExit is the sentinel error wrapped by ExitStatusError.
var ErrSubprocessExit = errors.New("external compiler exited with non-zero status")

type (
	// ExitCode represents a process exit status code.
	// The zero value (0) means success.
	ExitCode int

	// ExitStatusError reports a non-zero exit from the external compiler in
	// passthrough mode. The exit status is carried untranslated so the CLI
	// can mirror it. It wraps ErrSubprocessExit for errors.Is() compatibility.
	ExitStatusError struct {
		Code ExitCode
	}

	// Result is the outcome of a capture-mode invocation.
	Result struct {
		// ExitCode is the child's exit status.
		ExitCode ExitCode
		// Output is the captured standard output.
		Output string
	}

	// Execer launches the external compiler executable and blocks until it
	// exits. It exists as an interface so tests can substitute a fake
	// compiler without spawning processes.
	Execer interface {
		// Run invokes the executable in passthrough mode: the child
		// inherits the caller's standard streams. A non-zero exit is
		// reported through the returned ExitCode, not as an error; the
		// error return is reserved for failures to launch.
		Run(ctx context.Context, name string, args []string) (ExitCode, error)

		// RunCapture invokes the executable and captures its standard
		// output. As with Run, a non-zero exit is not an error.
		RunCapture(ctx context.Context, name string, args []string) (*Result, error)
	}

	// processExecer is the real Execer backed by os/exec.
	processExecer struct{}
)

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

// Error implements the error interface.
func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("external compiler exited with status %d", e.Code)
}

// Unwrap returns ErrSubprocessExit so callers can use errors.Is.
func (e *ExitStatusError) Unwrap() error { return ErrSubprocessExit }

// invokeError classifies a failed invocation. A context that expired means
// the child was killed by the configured timeout, which is reported as such
// rather than as a synthetic exit status.
func invokeError(ctx context.Context, name string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s did not finish before the invoke timeout: %w", name, ctxErr)
	}
	return fmt.Errorf("failed to invoke %s: %w", name, err)
}

func (processExecer) Run(ctx context.Context, name string, args []string) (ExitCode, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return 1, invokeError(ctx, name, err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExitCode(exitErr.ExitCode()), nil
		}
		return 1, invokeError(ctx, name, err)
	}

	return 0, nil
}

func (processExecer) RunCapture(ctx context.Context, name string, args []string) (*Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = nil

	err := cmd.Run()
	result := &Result{Output: stdout.String()}

	if err != nil {
		if ctx.Err() != nil {
			return nil, invokeError(ctx, name, err)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = ExitCode(exitErr.ExitCode())
			return result, nil
		}
		return nil, invokeError(ctx, name, err)
	}

	return result, nil
}
