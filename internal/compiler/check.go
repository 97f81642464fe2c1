// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"jmvdev-cli/pkg/jmvmod"

	"github.com/Masterminds/semver/v3"
)

// ErrIncompatibleVersion is the sentinel error wrapped by IncompatibleVersionError.
var ErrIncompatibleVersion = errors.New("incompatible jamovi version")

// IncompatibleVersionError reports that a module declares a minimum jamovi
// version newer than the installed one. It carries both versions so the CLI
// can show them side by side. It wraps ErrIncompatibleVersion.
type IncompatibleVersionError struct {
	Required  *semver.Version
	Installed *semver.Version
}

// Error implements the error interface.
func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf("module requires jamovi %s or newer, but version %s is installed", e.Required, e.Installed)
}

// Unwrap returns ErrIncompatibleVersion so callers can use errors.Is.
func (e *IncompatibleVersionError) Unwrap() error { return ErrIncompatibleVersion }

// CheckMinVersion gates installs on the module's declared minApp. A module
// without a manifest, or without a minApp declaration, passes trivially.
// When a declaration is present it must not exceed the installed compiler's
// reported version.
func (c *Client) CheckMinVersion(ctx context.Context, modulePath string) error {
	manifest, err := jmvmod.ReadManifest(modulePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if manifest.MinApp == "" {
		return nil
	}

	required, err := semver.NewVersion(manifest.MinApp)
	if err != nil {
		return fmt.Errorf("module declares malformed minApp %q: %w", manifest.MinApp, err)
	}

	installed := c.InstalledVersion(ctx)
	if required.GreaterThan(installed) {
		return &IncompatibleVersionError{Required: required, Installed: installed}
	}

	return nil
}
