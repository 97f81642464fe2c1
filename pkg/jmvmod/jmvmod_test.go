// SPDX-License-Identifier: MPL-2.0

package jmvmod

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"jmvdev-cli/pkg/platform"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		family  platform.Family
		wantErr error
	}{
		{"MyMod", platform.FamilyLinux, nil},
		{"linreg", platform.FamilyLinux, nil},
		{"ttestIS", platform.FamilyOther, nil},
		{"a1", platform.FamilyLinux, nil},
		{"", platform.FamilyLinux, ErrInvalidName},
		{"a", platform.FamilyLinux, ErrInvalidName},
		{"1abc", platform.FamilyLinux, ErrInvalidName},
		{"my-mod", platform.FamilyLinux, ErrInvalidName},
		{"my mod", platform.FamilyLinux, ErrInvalidName},
		{"my_mod", platform.FamilyLinux, ErrInvalidName},
		{"mód", platform.FamilyLinux, ErrInvalidName},
		// Reserved device names are rejected on Windows only.
		{"NUL", platform.FamilyWindows, ErrReservedName},
		{"con", platform.FamilyWindows, ErrReservedName},
		{"NUL", platform.FamilyLinux, nil},
		{"COM1", platform.FamilyWindows, ErrReservedName},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+string(tt.family), func(t *testing.T) {
			t.Parallel()
			err := ValidateName(tt.name, tt.family)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateName(%q) = %v, want nil", tt.name, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateName(%q) = %v, want %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestIsModuleDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if IsModuleDir(dir) {
		t.Error("empty directory reported as module")
	}

	if err := os.WriteFile(filepath.Join(dir, DescriptionFileName), []byte("Package: x\n"), 0o644); err != nil {
		t.Fatalf("failed to write DESCRIPTION: %v", err)
	}
	if !IsModuleDir(dir) {
		t.Error("directory with DESCRIPTION not reported as module")
	}
}

func TestReadManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ManifestDirName), 0o755); err != nil {
		t.Fatalf("failed to create manifest dir: %v", err)
	}

	content := "name: MyMod\ntitle: My Module\nversion: 1.0.0\nminApp: 2.3.18\n"
	if err := os.WriteFile(ManifestPath(dir), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	manifest, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest() failed: %v", err)
	}
	if manifest.Name != "MyMod" {
		t.Errorf("Name = %q, want MyMod", manifest.Name)
	}
	if manifest.MinApp != "2.3.18" {
		t.Errorf("MinApp = %q, want 2.3.18", manifest.MinApp)
	}
}

func TestReadManifestMissing(t *testing.T) {
	t.Parallel()

	_, err := ReadManifest(t.TempDir())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadManifest() on empty dir = %v, want fs.ErrNotExist", err)
	}
}

func TestReadManifestWithoutMinApp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ManifestDirName), 0o755); err != nil {
		t.Fatalf("failed to create manifest dir: %v", err)
	}
	if err := os.WriteFile(ManifestPath(dir), []byte("name: MyMod\n"), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	manifest, err := ReadManifest(dir)
	if err != nil {
		t.Fatalf("ReadManifest() failed: %v", err)
	}
	if manifest.MinApp != "" {
		t.Errorf("MinApp = %q, want empty", manifest.MinApp)
	}
}
