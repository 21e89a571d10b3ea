// Package reconcile compares a roster against stored players and flags
// likely duplicates among the names that are not yet stored.
package reconcile

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"protracker/internal/faults"
	"protracker/internal/logging"
	"protracker/internal/players"
	"protracker/internal/roster"
)

// Candidate is a new roster name with the stored players it may duplicate.
type Candidate struct {
	Name    players.Name
	Matches []players.Match
}

// Result partitions a roster. Each slice is sorted by last then first name.
type Result struct {
	New      []players.Name
	Similar  []Candidate
	Existing []players.Name
}

// Total is the number of roster names checked.
func (r Result) Total() int {
	return len(r.New) + len(r.Existing)
}

// Reconciler checks roster names against a lookup.
type Reconciler struct {
	lookup  players.Lookup
	matcher *players.Matcher
	logger  *slog.Logger
}

// New builds a reconciler over lookup.
func New(lookup players.Lookup, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		lookup:  lookup,
		matcher: players.NewMatcher(lookup, logger),
		logger:  logging.NewComponentLogger(logger, "reconcile"),
	}
}

// Run classifies every entry. It reads only.
func (r *Reconciler) Run(ctx context.Context, entries []roster.Entry) (Result, error) {
	var res Result
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return Result{}, faults.Wrap(faults.ErrProcessing, "reconcile", "cancelled", "", err)
		}
		logger := r.logger.With(logging.Int(logging.FieldRow, entry.Line))

		_, exists, err := r.lookup.FindExact(ctx, entry.Name)
		if err != nil {
			return Result{}, faults.Wrap(faults.ErrProcessing, "reconcile", "exact lookup", entry.Name.String(), err)
		}
		if exists {
			logger.Debug("player exists", logging.String("player", entry.Name.String()))
			res.Existing = append(res.Existing, entry.Name)
			continue
		}

		res.New = append(res.New, entry.Name)
		matches, err := r.matcher.FindSimilar(ctx, entry.Name)
		if err != nil {
			return Result{}, faults.Wrap(faults.ErrProcessing, "reconcile", "similar lookup", entry.Name.String(), err)
		}
		if len(matches) > 0 {
			logger.Debug("possible duplicates",
				logging.String("player", entry.Name.String()),
				logging.Int("matches", len(matches)),
			)
			res.Similar = append(res.Similar, Candidate{Name: entry.Name, Matches: matches})
		}
	}

	slices.SortStableFunc(res.New, compareNames)
	slices.SortStableFunc(res.Existing, compareNames)
	slices.SortStableFunc(res.Similar, func(a, b Candidate) int {
		return compareNames(a.Name, b.Name)
	})

	r.logger.Info("roster reconciled",
		logging.Int("total", res.Total()),
		logging.Int("new", len(res.New)),
		logging.Int("similar", len(res.Similar)),
		logging.Int("existing", len(res.Existing)),
	)
	return res, nil
}

func compareNames(a, b players.Name) int {
	return cmp.Or(cmp.Compare(a.Last, b.Last), cmp.Compare(a.First, b.First))
}

