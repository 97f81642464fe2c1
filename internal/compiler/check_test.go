// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"jmvdev-cli/pkg/jmvmod"
)

// writeModuleManifest creates a minimal module directory whose manifest
// declares the given minApp ("" omits the key).
func writeModuleManifest(t *testing.T, minApp string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, jmvmod.ManifestDirName), 0o755); err != nil {
		t.Fatalf("failed to create manifest dir: %v", err)
	}
	content := "name: MyMod\ntitle: My Module\n"
	if minApp != "" {
		content += "minApp: " + minApp + "\n"
	}
	if err := os.WriteFile(jmvmod.ManifestPath(dir), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return dir
}

func TestCheckMinVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		minApp    string
		installed string
		wantErr   error
	}{
		{
			name:      "declared minimum exceeds installed",
			minApp:    "9.9.9",
			installed: "1.0.0",
			wantErr:   ErrIncompatibleVersion,
		},
		{
			name:      "declared minimum below installed",
			minApp:    "0.0.1",
			installed: "1.0.0",
		},
		{
			name:      "equal versions pass",
			minApp:    "2.3.18",
			installed: "2.3.18",
		},
		{
			name:      "no minApp passes trivially",
			minApp:    "",
			installed: "1.0.0",
		},
		{
			name:      "patch-level comparison",
			minApp:    "2.3.19",
			installed: "2.3.18",
			wantErr:   ErrIncompatibleVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			modulePath := writeModuleManifest(t, tt.minApp)
			exe := &fakeExecer{captureOutput: "jamovi " + tt.installed + " found\n"}
			c := newTestClient(t, nil, exe)

			err := c.CheckMinVersion(context.Background(), modulePath)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("CheckMinVersion() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckMinVersion() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckMinVersionErrorCarriesBothVersions(t *testing.T) {
	t.Parallel()

	modulePath := writeModuleManifest(t, "3.0.0")
	exe := &fakeExecer{captureOutput: "jamovi 2.3.18 found\n"}
	c := newTestClient(t, nil, exe)

	err := c.CheckMinVersion(context.Background(), modulePath)

	var incompatErr *IncompatibleVersionError
	if !errors.As(err, &incompatErr) {
		t.Fatalf("CheckMinVersion() = %v, want *IncompatibleVersionError", err)
	}
	if incompatErr.Required.String() != "3.0.0" {
		t.Errorf("Required = %s, want 3.0.0", incompatErr.Required)
	}
	if incompatErr.Installed.String() != "2.3.18" {
		t.Errorf("Installed = %s, want 2.3.18", incompatErr.Installed)
	}
}

func TestCheckMinVersionMissingManifestPasses(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, nil, &fakeExecer{})
	if err := c.CheckMinVersion(context.Background(), t.TempDir()); err != nil {
		t.Errorf("CheckMinVersion() without manifest = %v, want nil", err)
	}
}

func TestCheckMinVersionMalformedMinApp(t *testing.T) {
	t.Parallel()

	modulePath := writeModuleManifest(t, "not.a.version")
	c := newTestClient(t, nil, &fakeExecer{captureOutput: "jamovi 1.0.0 found\n"})

	if err := c.CheckMinVersion(context.Background(), modulePath); err == nil {
		t.Error("CheckMinVersion() with malformed minApp should fail")
	}
}

func TestInstallRunsVersionGateFirst(t *testing.T) {
	t.Parallel()

	modulePath := writeModuleManifest(t, "9.9.9")
	exe := &fakeExecer{captureOutput: "jamovi 1.0.0 found\n"}
	c := newTestClient(t, nil, exe)

	err := c.Install(context.Background(), modulePath)
	if !errors.Is(err, ErrIncompatibleVersion) {
		t.Fatalf("Install() = %v, want ErrIncompatibleVersion", err)
	}

	// The gate must abort before any install invocation happens.
	if len(exe.runs) != 0 {
		t.Errorf("install invoked despite failed version gate: %v", exe.runs)
	}
}

func TestInstallProceedsWhenCompatible(t *testing.T) {
	t.Parallel()

	modulePath := writeModuleManifest(t, "1.0.0")
	exe := &fakeExecer{captureOutput: "jamovi 2.0.0 found\n"}
	c := newTestClient(t, nil, exe)

	if err := c.Install(context.Background(), modulePath); err != nil {
		t.Fatalf("Install() failed: %v", err)
	}
	if len(exe.runs) != 1 {
		t.Fatalf("expected one install invocation, got %d", len(exe.runs))
	}
	if exe.runs[0].args[0] != FlagInstall {
		t.Errorf("first arg = %q, want %q", exe.runs[0].args[0], FlagInstall)
	}
}
