// Package logging assembles structured slog loggers and formatting helpers used
// across the protracker commands.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so workflow code tags log lines
// with the run identifier and command name. A no-op logger is provided for
// tests and wiring code that cannot fail.
//
// Logs are written to stderr by default; command reports own stdout.
package logging
