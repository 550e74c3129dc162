// Package titles answers "which canonical game is this?" for scanners.
//
// Scanners depend only on the Finder interface. Two implementations ship
// here: Catalog, an in-memory set used by tests and small setups, and
// Database, a SQLite-backed store filled by `savescout titles import`. Both
// share Normalize, which folds case, accents, trademark symbols, edition
// suffixes, and punctuation so that launcher-reported names like
// "Foo Game™: Definitive Edition" still find "Foo Game".
package titles
