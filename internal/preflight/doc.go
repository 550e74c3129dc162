// Package preflight provides readiness checks for the paths savescout
// reads: configured launcher roots, Heroic manifests, and the canonical
// title database.
//
// The CLI "savescout doctor" command runs RunAll and renders each Result.
// Checks never modify anything on disk.
package preflight
