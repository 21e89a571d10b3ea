package ingest

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"protracker/internal/faults"
	"protracker/internal/logging"
	"protracker/internal/roster"
	"protracker/internal/tourdb"
)

// Store opens transactions. *tourdb.DB satisfies it.
type Store interface {
	Begin(ctx context.Context, opts tourdb.TxOptions) (*tourdb.Tx, error)
}

// Options controls a single import.
type Options struct {
	// Limit caps the number of rows processed; zero means no cap.
	Limit  int
	DryRun bool
	// Preview receives the SQL a dry run would have executed.
	Preview io.Writer
}

// Summary reports what an import did or, in a dry run, would have done.
type Summary struct {
	Rows           int
	EventsCreated  int
	PlayersCreated int
	ResultsWritten int
	DryRun         bool
	LimitReached   bool
}

// Importer applies results sheets to a store.
type Importer struct {
	store  Store
	logger *slog.Logger
}

// New builds an importer.
func New(store Store, logger *slog.Logger) *Importer {
	return &Importer{
		store:  store,
		logger: logging.NewComponentLogger(logger, "ingest"),
	}
}

// Run reads the sheet from src and writes every row in one transaction. On
// any error nothing is committed.
func (im *Importer) Run(ctx context.Context, src io.Reader, opts Options) (Summary, error) {
	summary := Summary{DryRun: opts.DryRun}

	sheet, err := roster.NewSheet(src)
	if err != nil {
		return summary, faults.Wrap(faults.ErrInput, "ingest", "read header", "", err)
	}
	if err := sheet.Require(requiredColumns...); err != nil {
		return summary, faults.Wrap(faults.ErrInput, "ingest", "check header", "", err)
	}

	tx, err := im.store.Begin(ctx, tourdb.TxOptions{DryRun: opts.DryRun, Preview: opts.Preview})
	if err != nil {
		return summary, faults.Wrap(faults.ErrConnection, "ingest", "begin", "", err)
	}
	defer func() { _ = tx.Rollback() }()

	for {
		if err := ctx.Err(); err != nil {
			return summary, faults.Wrap(faults.ErrProcessing, "ingest", "cancelled", "", err)
		}
		rec, err := sheet.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, faults.Wrap(faults.ErrInput, "ingest", "read row", "", err)
		}
		// Only a row that exists past the cap counts as truncation.
		if opts.Limit > 0 && summary.Rows >= opts.Limit {
			summary.LimitReached = true
			im.logger.Info("row limit reached", logging.Int("limit", opts.Limit))
			break
		}
		summary.Rows++
		if err := im.applyRow(ctx, tx, rec, &summary); err != nil {
			return summary, err
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, faults.Wrap(faults.ErrProcessing, "ingest", "commit", "", err)
	}
	im.logger.Info("results import finished",
		logging.Int("rows", summary.Rows),
		logging.Int("events_created", summary.EventsCreated),
		logging.Int("players_created", summary.PlayersCreated),
		logging.Int("results", summary.ResultsWritten),
		logging.Bool(logging.FieldDryRun, opts.DryRun),
	)
	return summary, nil
}

func (im *Importer) applyRow(ctx context.Context, tx *tourdb.Tx, rec roster.Record, summary *Summary) error {
	r, err := parseRow(rec)
	if err != nil {
		return faults.Wrap(faults.ErrInput, "ingest", "parse row", "", err)
	}
	logger := im.logger.With(logging.Int(logging.FieldRow, r.line))
	logger.Debug("processing row", logging.String("player", r.player.String()))
	if !r.dateValid {
		logging.WarnWithContext(logger, "could not parse event date", "ingest_date_unparsed",
			logging.String("date", r.rawDate),
			logging.String(logging.FieldErrorHint, "use DD/MM/YYYY in the Event Date column"),
			logging.String(logging.FieldImpact, "event date stored as given"),
		)
	}

	eventID, created, err := tx.EnsureEvent(ctx, r.event)
	if err != nil {
		return faults.Wrap(faults.ErrProcessing, "ingest", "resolve event", r.event.Name, err)
	}
	if created {
		summary.EventsCreated++
		logger.Info("event created", logging.String("event", r.event.Name), logging.Int64("event_id", eventID))
	}

	player, created, err := tx.EnsurePlayer(ctx, r.player)
	if err != nil {
		return faults.Wrap(faults.ErrProcessing, "ingest", "resolve player", r.player.String(), err)
	}
	if created {
		summary.PlayersCreated++
		logger.Info("player created", logging.String("player", r.player.String()), logging.Int64("player_id", player.ID))
	}

	result := r.result
	result.PlayerID = player.ID
	result.EventID = eventID
	if err := tx.InsertResult(ctx, result); err != nil {
		return faults.Wrap(faults.ErrProcessing, "ingest", "insert result", r.player.String(), err)
	}
	summary.ResultsWritten++
	return nil
}
