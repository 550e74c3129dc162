// Package config loads and validates the savescout TOML configuration.
//
// The file lists the launcher roots to scan, where the canonical title
// database lives, logging preferences, and the diagnostics toggle. Load
// expands "~" in every path, folds the SAVESCOUT_DEBUG environment variable
// into Diagnostics.Debug, and rejects unknown stores before any scanner sees
// the roots.
package config
