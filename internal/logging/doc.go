// Package logging assembles structured slog loggers and formatting helpers used
// across savescout.
//
// It owns the console/JSON handlers, maps the configured level names
// (including trace) onto slog levels, and exposes small helpers so scanners
// can tag log lines with components, roots, and app names consistently. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
