// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidCompilerPath is returned when the compiler value is whitespace-only.
	ErrInvalidCompilerPath = errors.New("invalid compiler path")
	// ErrInvalidInvokeTimeout is the sentinel error wrapped by InvalidInvokeTimeoutError.
	ErrInvalidInvokeTimeout = errors.New("invalid invoke timeout")
)

type (
	// Config holds all jmvdev settings. The zero value is usable: every
	// field has an "unset" meaning that resolves to a sensible default at
	// the point of use.
	Config struct {
		// Home is the default value for the external compiler's --home
		// argument. Empty means unset; on Linux the flatpak packaging
		// convention then applies when arguments are built.
		Home string `mapstructure:"home"`

		// Compiler is the path to (or name of) the external compiler
		// executable. Empty means "jmc", resolved through PATH.
		Compiler string `mapstructure:"compiler"`

		// RHome is the directory containing the R runtime binary, passed
		// via --rpath on non-Windows hosts. Empty means the directory is
		// discovered by locating "R" on PATH.
		RHome string `mapstructure:"r_home"`

		// InvokeTimeout bounds how long a single external compiler
		// invocation may run. Zero (the default) means no timeout: the
		// call blocks until the compiler exits, matching the tool's
		// historical synchronous contract.
		InvokeTimeout time.Duration `mapstructure:"invoke_timeout"`

		// Debug enables verbose logging and forwards --debug to the
		// external compiler.
		Debug bool `mapstructure:"debug"`
	}

	// InvalidInvokeTimeoutError is returned when InvokeTimeout is negative.
	// It wraps ErrInvalidInvokeTimeout for errors.Is() compatibility.
	InvalidInvokeTimeoutError struct {
		Value time.Duration
	}
)

// Error implements the error interface.
func (e *InvalidInvokeTimeoutError) Error() string {
	return fmt.Sprintf("invalid invoke timeout %s (must not be negative)", e.Value)
}

// Unwrap returns ErrInvalidInvokeTimeout so callers can use errors.Is.
func (e *InvalidInvokeTimeoutError) Unwrap() error { return ErrInvalidInvokeTimeout }

// IsValid returns whether the Config is well formed, and the list of
// validation errors if it is not.
func (c *Config) IsValid() (bool, []error) {
	var errs []error

	if c.Compiler != "" && strings.TrimSpace(c.Compiler) == "" {
		errs = append(errs, ErrInvalidCompilerPath)
	}
	if c.InvokeTimeout < 0 {
		errs = append(errs, &InvalidInvokeTimeoutError{Value: c.InvokeTimeout})
	}

	return len(errs) == 0, errs
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Home:          "",
		Compiler:      "",
		RHome:         "",
		InvokeTimeout: 0,
		Debug:         false,
	}
}
