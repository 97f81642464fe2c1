// SPDX-License-Identifier: MPL-2.0

package jmvmod

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jmvdev-cli/pkg/platform"
)

// Preparer hands a freshly scaffolded module to the external compiler's
// prepare operation so derived artifacts are regenerated immediately.
// Implementations block until the compiler exits.
type Preparer interface {
	Prepare(ctx context.Context, modulePath string) error
}

type (
	// Scaffolder creates modules and analyses from the embedded templates.
	// The zero value is usable: it detects the host platform and skips the
	// prepare step.
	Scaffolder struct {
		// Preparer is invoked after every successful scaffold. Nil means
		// the prepare step is skipped (useful in tests).
		Preparer Preparer
		// Family selects platform-specific naming restrictions. Empty
		// means the host platform is detected.
		Family platform.Family
	}

	// CreateOptions are the inputs to Scaffolder.Create.
	CreateOptions struct {
		// Path is the target module directory. The final path segment
		// becomes the module name.
		Path string
		// IncludeIgnoreFile writes the ignore-file template verbatim into
		// the new module.
		IncludeIgnoreFile bool
	}

	// AddAnalysisOptions are the inputs to Scaffolder.AddAnalysis.
	AddAnalysisOptions struct {
		// Name is the analysis identifier.
		Name string
		// Title is the human-readable analysis title. Empty defaults to Name.
		Title string
		// Path is the module directory the analysis is added to.
		Path string
	}
)

func (s *Scaffolder) family() platform.Family {
	if s.Family != "" {
		return s.Family
	}
	return platform.Detect()
}

func (s *Scaffolder) prepare(ctx context.Context, modulePath string) error {
	if s.Preparer == nil {
		return nil
	}
	return s.Preparer.Prepare(ctx, modulePath)
}

// Create scaffolds a new module at opts.Path and hands it to the prepare
// operation. It returns the normalized module path.
//
// The module name is derived from the final path segment and must satisfy
// the naming invariant. The parent directory must already exist; the module
// directory itself must be absent or empty. All validation runs before any
// filesystem mutation.
func (s *Scaffolder) Create(ctx context.Context, opts CreateOptions) (string, error) {
	modulePath, err := filepath.Abs(filepath.Clean(opts.Path))
	if err != nil {
		return "", fmt.Errorf("failed to resolve module path: %w", err)
	}

	name := filepath.Base(modulePath)
	if err := ValidateName(name, s.family()); err != nil {
		return "", err
	}

	parent := filepath.Dir(modulePath)
	if info, statErr := os.Stat(parent); statErr != nil || !info.IsDir() {
		return "", &MissingParentError{Path: modulePath}
	}

	if entries, readErr := os.ReadDir(modulePath); readErr == nil && len(entries) > 0 {
		return "", &DirectoryNotEmptyError{Path: modulePath}
	}

	if err := os.MkdirAll(modulePath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create module directory: %w", err)
	}

	for _, dir := range []string{SourceDirName, ManifestDirName} {
		if err := os.Mkdir(filepath.Join(modulePath, dir), 0o755); err != nil {
			return "", fmt.Errorf("failed to create %s directory: %w", dir, err)
		}
	}

	subs := map[string]string{PlaceholderName: name}
	files := []struct {
		template string
		dest     string
	}{
		{descriptionTemplate, DescriptionFileName},
		{namespaceTemplate, NamespaceFileName},
	}
	for _, f := range files {
		content, renderErr := substitute(f.template, subs)
		if renderErr != nil {
			return "", renderErr
		}
		if writeErr := os.WriteFile(filepath.Join(modulePath, f.dest), []byte(content), 0o644); writeErr != nil {
			return "", fmt.Errorf("failed to write %s: %w", f.dest, writeErr)
		}
	}

	if opts.IncludeIgnoreFile {
		// Written verbatim: the ignore template carries no placeholders.
		dest := filepath.Join(modulePath, IgnoreFileName)
		if err := os.WriteFile(dest, []byte(ignoreTemplate), 0o644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", IgnoreFileName, err)
		}
	}

	if err := s.prepare(ctx, modulePath); err != nil {
		return "", err
	}

	return modulePath, nil
}

// AddAnalysis scaffolds the options/results manifest pair for a new analysis
// inside an existing module, then hands the module to the prepare operation.
//
// The existence pre-check on the options manifest runs before either file is
// written, so an existing analysis is never partially overwritten. The check
// and the writes are not atomic as a pair; a concurrent writer could race
// between them, which is accepted for a single-user CLI tool.
func (s *Scaffolder) AddAnalysis(ctx context.Context, opts AddAnalysisOptions) error {
	if err := ValidateName(opts.Name, s.family()); err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = opts.Name
	}

	modulePath, err := filepath.Abs(filepath.Clean(opts.Path))
	if err != nil {
		return fmt.Errorf("failed to resolve module path: %w", err)
	}

	if !IsModuleDir(modulePath) {
		return &NotAModuleError{Path: modulePath}
	}

	moduleName := filepath.Base(modulePath)

	manifestDir := filepath.Join(modulePath, ManifestDirName)
	if err := os.MkdirAll(manifestDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", ManifestDirName, err)
	}

	subs := map[string]string{
		PlaceholderName:       opts.Name,
		PlaceholderTitle:      title,
		PlaceholderModuleName: moduleName,
	}

	optionsContent, err := substitute(analysisOptionsTemplate, subs)
	if err != nil {
		return err
	}
	resultsContent, err := substitute(analysisResultsTemplate, subs)
	if err != nil {
		return err
	}

	base := strings.ToLower(opts.Name)
	optionsPath := filepath.Join(manifestDir, base+OptionsSuffix)
	resultsPath := filepath.Join(manifestDir, base+ResultsSuffix)

	if _, statErr := os.Stat(optionsPath); statErr == nil {
		return &AnalysisExistsError{Name: opts.Name, Path: optionsPath}
	}

	if err := os.WriteFile(optionsPath, []byte(optionsContent), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(optionsPath), err)
	}
	if err := os.WriteFile(resultsPath, []byte(resultsContent), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(resultsPath), err)
	}

	return s.prepare(ctx, modulePath)
}
