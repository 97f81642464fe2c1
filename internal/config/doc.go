// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates jmvdev configuration.
//
// Configuration is an explicit value threaded through every component that
// needs it; there is no ambient process-wide lookup. Values come from a YAML
// config file in the platform config directory, overridable per key through
// JMV_* environment variables and per call through CLI flags.
package config
