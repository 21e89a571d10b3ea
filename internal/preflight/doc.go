// Package preflight provides readiness checks for the paths and database
// protracker depends on.
//
// The CLI "protracker status" command runs them so a misconfigured state
// directory, a missing CSV or an unreachable database shows up before a
// write is attempted. Missing accent folding is reported as a warning.
package preflight
