// Package qualify records notable qualifications for every player on a
// roster, creating players that are not stored yet.
package qualify

import (
	"context"
	"io"
	"log/slog"

	"protracker/internal/faults"
	"protracker/internal/logging"
	"protracker/internal/players"
	"protracker/internal/roster"
	"protracker/internal/tourdb"
)

// Store opens transactions. *tourdb.DB satisfies it.
type Store interface {
	Begin(ctx context.Context, opts tourdb.TxOptions) (*tourdb.Tx, error)
}

// Options controls a run.
type Options struct {
	EventID int64
	DryRun  bool
	Preview io.Writer
}

// Summary counts what a run did or would have done.
type Summary struct {
	Processed int
	Created   int
	Added     int
	Skipped   int
	DryRun    bool
}

// Recorder adds qualifications from a roster.
type Recorder struct {
	store  Store
	logger *slog.Logger
}

// New builds a recorder.
func New(store Store, logger *slog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		logger: logging.NewComponentLogger(logger, "qualify"),
	}
}

// Run processes entries in order inside one transaction.
func (r *Recorder) Run(ctx context.Context, entries []roster.Entry, opts Options) (Summary, error) {
	summary := Summary{DryRun: opts.DryRun}
	if opts.EventID <= 0 {
		return summary, faults.Usage("event id must be positive, got %d", opts.EventID)
	}

	tx, err := r.store.Begin(ctx, tourdb.TxOptions{DryRun: opts.DryRun, Preview: opts.Preview})
	if err != nil {
		return summary, faults.Wrap(faults.ErrConnection, "qualify", "begin", "", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Names qualified earlier in this run; a dry run cannot see them in the
	// database.
	qualified := make(map[players.Name]struct{})

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, faults.Wrap(faults.ErrProcessing, "qualify", "cancelled", "", err)
		}
		summary.Processed++
		logger := r.logger.With(
			logging.Int(logging.FieldRow, entry.Line),
			logging.String("player", entry.Name.String()),
		)

		player, created, err := tx.EnsurePlayer(ctx, entry.Name)
		if err != nil {
			return summary, faults.Wrap(faults.ErrProcessing, "qualify", "resolve player", entry.Name.String(), err)
		}
		if created {
			summary.Created++
			logger.Info("player created", logging.Int64("player_id", player.ID))
		}

		exists := false
		if _, ok := qualified[entry.Name]; ok {
			exists = true
		} else {
			exists, err = tx.QualificationExists(ctx, player.ID, opts.EventID)
			if err != nil {
				return summary, faults.Wrap(faults.ErrProcessing, "qualify", "check qualification", entry.Name.String(), err)
			}
		}
		if exists {
			summary.Skipped++
			logger.Info("qualification already recorded", logging.Int64("event_id", opts.EventID))
			continue
		}

		if err := tx.AddQualification(ctx, player.ID, opts.EventID); err != nil {
			return summary, faults.Wrap(faults.ErrProcessing, "qualify", "add qualification", entry.Name.String(), err)
		}
		qualified[entry.Name] = struct{}{}
		summary.Added++
		logger.Info("qualification added", logging.Int64("event_id", opts.EventID))
	}

	if err := tx.Commit(); err != nil {
		return summary, faults.Wrap(faults.ErrProcessing, "qualify", "commit", "", err)
	}
	r.logger.Info("qualifications finished",
		logging.Int("processed", summary.Processed),
		logging.Int("created", summary.Created),
		logging.Int("added", summary.Added),
		logging.Int("skipped", summary.Skipped),
		logging.Bool(logging.FieldDryRun, opts.DryRun),
	)
	return summary, nil
}
