// Package launcher defines the vocabulary shared by every launcher scanner:
// configured roots, store kinds, platforms, and the ordered mapping of
// canonical titles to detected games that a scan produces.
//
// Scanners live in their own packages (see internal/heroic) and only exchange
// these types with the CLI and the runtime resolver.
package launcher
