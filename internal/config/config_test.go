// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"jmvdev-cli/internal/testutil"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file failed: %v", err)
	}

	if cfg.Home != "" {
		t.Errorf("default Home = %q, want empty", cfg.Home)
	}
	if cfg.Compiler != "" {
		t.Errorf("default Compiler = %q, want empty", cfg.Compiler)
	}
	if cfg.InvokeTimeout != 0 {
		t.Errorf("default InvokeTimeout = %s, want 0", cfg.InvokeTimeout)
	}
	if cfg.Debug {
		t.Error("default Debug = true, want false")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	content := "home: /opt/jamovi\ncompiler: /usr/local/bin/jmc\ninvoke_timeout: 30s\ndebug: true\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Home != "/opt/jamovi" {
		t.Errorf("Home = %q, want /opt/jamovi", cfg.Home)
	}
	if cfg.Compiler != "/usr/local/bin/jmc" {
		t.Errorf("Compiler = %q, want /usr/local/bin/jmc", cfg.Compiler)
	}
	if cfg.InvokeTimeout != 30*time.Second {
		t.Errorf("InvokeTimeout = %s, want 30s", cfg.InvokeTimeout)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)
	t.Cleanup(testutil.MustSetenv(t, "JMV_HOME", "/env/jamovi"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Home != "/env/jamovi" {
		t.Errorf("Home = %q, want env override /env/jamovi", cfg.Home)
	}
}

func TestLoadCustomFilePathMustExist(t *testing.T) {
	SetConfigFilePathOverride(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(Reset)

	if _, err := Load(); err == nil {
		t.Error("Load() with missing custom config file should fail")
	}
}

func TestConfigIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantOK  bool
		wantErr error
	}{
		{
			name:   "zero value is valid",
			cfg:    Config{},
			wantOK: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{InvokeTimeout: -time.Second},
			wantOK:  false,
			wantErr: ErrInvalidInvokeTimeout,
		},
		{
			name:    "whitespace compiler path",
			cfg:     Config{Compiler: "   "},
			wantOK:  false,
			wantErr: ErrInvalidCompilerPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, errs := tt.cfg.IsValid()
			if ok != tt.wantOK {
				t.Fatalf("IsValid() = %v, want %v (errs: %v)", ok, tt.wantOK, errs)
			}
			if tt.wantErr != nil {
				found := false
				for _, err := range errs {
					if errors.Is(err, tt.wantErr) {
						found = true
					}
				}
				if !found {
					t.Errorf("expected %v in validation errors, got %v", tt.wantErr, errs)
				}
			}
		})
	}
}
