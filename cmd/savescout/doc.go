// Package main hosts the savescout CLI entrypoint and command graph.
//
// The Cobra command tree scans configured launcher roots for installed
// games, resolves the game Heroic is launching from its environment, manages
// the canonical title database, and scaffolds configuration. Config loading,
// logger construction, and the title database are resolved once per
// invocation in commandContext so subcommands only deal with output.
//
// Logs always go to stderr. Stdout carries command results, as a table on a
// terminal, tab-separated text otherwise, or JSON with --json.
package main
