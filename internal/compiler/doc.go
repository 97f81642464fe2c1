// SPDX-License-Identifier: MPL-2.0

// Package compiler wraps the external jamovi compiler (jmc) behind a small
// client. The compiler does all real build/install/prepare work; this
// package only assembles argument vectors, spawns the process, and surfaces
// its exit status.
//
// Two invocation modes exist. Passthrough mode (install, prepare, check)
// inherits the caller's standard streams and mirrors the child's exit status
// so the CLI propagates success and failure untranslated. Capture mode
// (version discovery) collects stdout for parsing and treats a missing
// version line as "unknown" rather than a failure.
//
// Invocations are synchronous and made exactly once: no retry, and no
// timeout unless one is configured.
package compiler
