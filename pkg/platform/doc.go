// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package contains the host OS family detection used to select
// argument-quoting and path conventions for the external compiler, plus
// helpers for platform-specific naming restrictions such as Windows
// reserved device names.
package platform
