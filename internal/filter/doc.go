// Package filter selects scanned games with user-supplied boolean
// expressions.
//
// Expressions use expr-lang syntax over the fields title, platform,
// install_dir, prefix, and has_prefix, for example
// `platform == "windows" && has_prefix` or `title startsWith "The"`.
package filter
