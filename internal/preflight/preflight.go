package preflight

import (
	"context"
	"log/slog"

	"protracker/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	// Warning marks a passed check with reduced functionality.
	Warning bool
	Detail  string
}

// RunAll executes every check for cfg. An empty dsn skips the database
// checks with a failed result.
func RunAll(ctx context.Context, cfg *config.Config, dsn string, logger *slog.Logger) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("State directory", cfg.Paths.StateDir),
		CheckFileReadable("Results sheet", cfg.Paths.ResultsCSV),
		CheckFileReadable("Roster", cfg.Paths.RosterCSV),
	}
	return append(results, CheckDatabase(ctx, dsn, logger)...)
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
