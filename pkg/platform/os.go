// SPDX-License-Identifier: MPL-2.0

package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// Family classifies the host operating system into the three groups the
// external compiler's argument conventions distinguish between.
type Family string

const (
	// FamilyWindows covers all Windows hosts. Paths passed to the external
	// compiler are double-quoted on this family.
	FamilyWindows Family = "windows"
	// FamilyLinux covers Linux hosts, where the sandboxed-packaging home
	// default applies.
	FamilyLinux Family = "linux"
	// FamilyOther covers everything else (macOS, BSDs, ...).
	FamilyOther Family = "other"
)

// Detect reports the OS family of the current host. Pure: it inspects
// runtime.GOOS only and has no failure modes.
func Detect() Family {
	return FamilyOf(runtime.GOOS)
}

// FamilyOf maps a GOOS value to its Family. Exposed separately from Detect
// so argument-building logic can be tested for all families on any host.
func FamilyOf(goos string) Family {
	switch goos {
	case Windows:
		return FamilyWindows
	case Linux:
		return FamilyLinux
	default:
		return FamilyOther
	}
}

// IsWindows reports whether f is the Windows family.
func (f Family) IsWindows() bool { return f == FamilyWindows }

// IsLinux reports whether f is the Linux family.
func (f Family) IsLinux() bool { return f == FamilyLinux }
