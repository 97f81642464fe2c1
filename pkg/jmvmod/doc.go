// SPDX-License-Identifier: MPL-2.0

// Package jmvmod provides functionality for working with jamovi modules.
//
// A jamovi module is a directory containing an R package skeleton
// (DESCRIPTION, NAMESPACE, an R/ source directory) plus a jamovi/ directory
// holding analysis manifests. This package covers the scaffolding side of
// that layout:
//
//   - [ValidateName]: naming rules shared by modules and analyses
//   - [Scaffolder.Create]: scaffold a new module from templates
//   - [Scaffolder.AddAnalysis]: add an analysis manifest pair to a module
//   - [ReadManifest]: read the module manifest (jamovi/0000.yaml)
//
// Compiling, installing and running modules is the job of the external
// jamovi compiler; the scaffolder only hands freshly written modules off to
// it through an injected [Preparer].
//
// # Naming
//
// Module and analysis names must start with a letter, be at least two
// characters long, and contain only ASCII letters and digits. On Windows,
// names that collide with reserved device names (CON, NUL, ...) are
// additionally rejected because they cannot exist as directories or files.
package jmvmod
