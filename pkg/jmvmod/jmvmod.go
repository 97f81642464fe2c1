// SPDX-License-Identifier: MPL-2.0

package jmvmod

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"jmvdev-cli/pkg/platform"

	"gopkg.in/yaml.v3"
)

const (
	// DescriptionFileName is the module descriptor file. Its presence is
	// what makes a directory a module.
	DescriptionFileName = "DESCRIPTION"
	// NamespaceFileName is the R namespace/export declaration file.
	NamespaceFileName = "NAMESPACE"
	// SourceDirName is the module's R source directory.
	SourceDirName = "R"
	// ManifestDirName is the directory holding analysis manifests.
	ManifestDirName = "jamovi"
	// ManifestFileName is the module manifest within ManifestDirName.
	ManifestFileName = "0000.yaml"
	// IgnoreFileName is the optional ignore-file written during scaffolding.
	IgnoreFileName = ".gitignore"

	// OptionsSuffix is the file suffix for analysis options manifests.
	OptionsSuffix = ".a.yaml"
	// ResultsSuffix is the file suffix for analysis results manifests.
	ResultsSuffix = ".r.yaml"
)

// nameRegex is the naming invariant shared by module and analysis names:
// start with a letter, length >= 2, alphanumeric only.
var nameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]+$`)

var (
	// ErrInvalidName is the sentinel error wrapped by InvalidNameError.
	ErrInvalidName = errors.New("invalid name")
	// ErrReservedName is the sentinel error wrapped by ReservedNameError.
	ErrReservedName = errors.New("reserved name")
	// ErrMissingParent is the sentinel error wrapped by MissingParentError.
	ErrMissingParent = errors.New("parent directory does not exist")
	// ErrDirectoryNotEmpty is the sentinel error wrapped by DirectoryNotEmptyError.
	ErrDirectoryNotEmpty = errors.New("directory not empty")
	// ErrNotAModule is the sentinel error wrapped by NotAModuleError.
	ErrNotAModule = errors.New("not a jamovi module")
	// ErrAnalysisExists is the sentinel error wrapped by AnalysisExistsError.
	ErrAnalysisExists = errors.New("analysis already exists")
	// ErrUnresolvedPlaceholder is the sentinel error wrapped by UnresolvedPlaceholderError.
	ErrUnresolvedPlaceholder = errors.New("unresolved template placeholder")
)

type (
	// InvalidNameError is returned when a module or analysis name fails the
	// naming invariant. It wraps ErrInvalidName for errors.Is() compatibility.
	InvalidNameError struct {
		Name string
	}

	// ReservedNameError is returned on Windows when a name collides with a
	// reserved device name. It wraps ErrReservedName.
	ReservedNameError struct {
		Name string
	}

	// MissingParentError is returned when the parent directory of a module
	// path does not exist. It wraps ErrMissingParent.
	MissingParentError struct {
		Path string
	}

	// DirectoryNotEmptyError is returned when the target module directory
	// already exists and contains entries. It wraps ErrDirectoryNotEmpty.
	DirectoryNotEmptyError struct {
		Path string
	}

	// NotAModuleError is returned when a path lacks a module descriptor.
	// It wraps ErrNotAModule.
	NotAModuleError struct {
		Path string
	}

	// AnalysisExistsError is returned when the options manifest for an
	// analysis already exists. It wraps ErrAnalysisExists.
	AnalysisExistsError struct {
		Name string
		Path string
	}

	// Manifest is the module manifest written (and later regenerated) by
	// the external compiler at jamovi/0000.yaml. Only the keys this layer
	// inspects are modeled; everything else is the compiler's business.
	Manifest struct {
		Name    string `yaml:"name"`
		Title   string `yaml:"title"`
		Version string `yaml:"version"`
		// MinApp optionally declares the minimum jamovi version the
		// module requires.
		MinApp string `yaml:"minApp"`
	}
)

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("name %q is invalid: must start with a letter, be at least two characters long, and contain only letters and digits", e.Name)
}

// Unwrap returns ErrInvalidName so callers can use errors.Is.
func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// Error implements the error interface.
func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("name %q is reserved on Windows and cannot be used", e.Name)
}

// Unwrap returns ErrReservedName so callers can use errors.Is.
func (e *ReservedNameError) Unwrap() error { return ErrReservedName }

// Error implements the error interface.
func (e *MissingParentError) Error() string {
	return fmt.Sprintf("parent directory of %q does not exist", e.Path)
}

// Unwrap returns ErrMissingParent so callers can use errors.Is.
func (e *MissingParentError) Unwrap() error { return ErrMissingParent }

// Error implements the error interface.
func (e *DirectoryNotEmptyError) Error() string {
	return fmt.Sprintf("directory %q already exists and is not empty", e.Path)
}

// Unwrap returns ErrDirectoryNotEmpty so callers can use errors.Is.
func (e *DirectoryNotEmptyError) Unwrap() error { return ErrDirectoryNotEmpty }

// Error implements the error interface.
func (e *NotAModuleError) Error() string {
	return fmt.Sprintf("%q is not a jamovi module (no %s file)", e.Path, DescriptionFileName)
}

// Unwrap returns ErrNotAModule so callers can use errors.Is.
func (e *NotAModuleError) Unwrap() error { return ErrNotAModule }

// Error implements the error interface.
func (e *AnalysisExistsError) Error() string {
	return fmt.Sprintf("analysis %q already exists at %s", e.Name, e.Path)
}

// Unwrap returns ErrAnalysisExists so callers can use errors.Is.
func (e *AnalysisExistsError) Unwrap() error { return ErrAnalysisExists }

// ValidateName checks a module or analysis name against the naming
// invariant. family selects platform-specific restrictions: on Windows,
// reserved device names are rejected even when they match the pattern.
func ValidateName(name string, family platform.Family) error {
	if !nameRegex.MatchString(name) {
		return &InvalidNameError{Name: name}
	}
	if family.IsWindows() && platform.IsWindowsReservedName(name) {
		return &ReservedNameError{Name: name}
	}
	return nil
}

// IsModuleDir reports whether path contains a module descriptor file.
func IsModuleDir(path string) bool {
	info, err := os.Stat(filepath.Join(path, DescriptionFileName))
	return err == nil && !info.IsDir()
}

// ManifestPath returns the path to the module manifest within modulePath.
func ManifestPath(modulePath string) string {
	return filepath.Join(modulePath, ManifestDirName, ManifestFileName)
}

// ReadManifest reads and parses the module manifest of the module at
// modulePath. A missing manifest surfaces as an fs.ErrNotExist error;
// callers that treat the manifest as optional should check for it with
// errors.Is.
func ReadManifest(modulePath string) (*Manifest, error) {
	data, err := os.ReadFile(ManifestPath(modulePath))
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{}
	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("failed to parse module manifest: %w", err)
	}

	return manifest, nil
}
