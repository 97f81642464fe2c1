// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"path/filepath"

	"jmvdev-cli/pkg/platform"
)

// Flags consumed by the external compiler.
const (
	FlagCheck   = "--check"
	FlagInstall = "--install"
	FlagPrepare = "--prepare"
	FlagHome    = "--home"
	FlagRPath   = "--rpath"
	FlagDebug   = "--debug"
)

// FlatpakHome is the sentinel --home value for the flatpak packaging
// convention, the default on Linux when no home is configured.
const FlatpakHome = "flatpak"

// rBinaryName is the R runtime executable located on PATH when no explicit
// R home is configured.
const rBinaryName = "R"

// quoteFor wraps value in double quotes on Windows, where the external
// compiler expects quoted paths. Other platforms pass values through.
func quoteFor(value string, family platform.Family) string {
	if family.IsWindows() {
		return `"` + value + `"`
	}
	return value
}

// quotePath wraps a filesystem path in double quotes on every platform.
// Module paths and the rpath value travel quoted regardless of host; only
// --home values follow the Windows-only convention.
func quotePath(value string) string {
	return `"` + value + `"`
}

// HomeArgs builds the (--home, value) argument pair. home is the explicitly
// requested value; empty falls back to the configured default, and on Linux
// finally to FlatpakHome. When nothing resolves the result is empty: absence
// is "no argument", never an error.
func HomeArgs(home, configuredHome string, family platform.Family) []string {
	resolved := home
	if resolved == "" {
		resolved = configuredHome
	}
	if resolved == "" && family.IsLinux() {
		resolved = FlatpakHome
	}
	if resolved == "" {
		return nil
	}
	return []string{FlagHome, quoteFor(resolved, family)}
}

// RPathArgs builds the (--rpath, value) argument pair pointing at the R
// runtime's binary directory, always double-quoted. On Windows the compiler
// discovers the runtime itself, so the result is empty there. rHome is the
// configured directory; empty means the directory is derived from locating
// the R binary through lookPath. When no runtime can be found the result is
// empty.
func RPathArgs(rHome string, family platform.Family, lookPath func(string) (string, error)) []string {
	if family.IsWindows() {
		return nil
	}

	dir := rHome
	if dir == "" {
		bin, err := lookPath(rBinaryName)
		if err != nil {
			return nil
		}
		dir = filepath.Dir(bin)
	}

	return []string{FlagRPath, quotePath(dir)}
}
