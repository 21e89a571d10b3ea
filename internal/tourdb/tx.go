package tourdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"protracker/internal/players"
)

// TxOptions configures Begin.
type TxOptions struct {
	// DryRun turns writes into SQL previews; the transaction never commits.
	DryRun bool
	// Preview receives rendered write statements during a dry run.
	Preview io.Writer
}

// Tx is a unit of work. Lookups see writes made earlier in the same Tx; in a
// dry run they also see rows that would have been written.
type Tx struct {
	queries
	tx      *sql.Tx
	dryRun  bool
	preview io.Writer

	pendingPlayers map[players.Name]struct{}
	pendingEvents  map[eventKey]int64
}

type eventKey struct {
	name   string
	date   string
	format string
}

// Begin starts a transaction. Callers must Commit or Rollback.
func (s *DB) Begin(ctx context.Context, opts TxOptions) (*Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	preview := opts.Preview
	if preview == nil {
		preview = io.Discard
	}
	return &Tx{
		queries:        queries{q: tx, d: s.d, accent: s.accent},
		tx:             tx,
		dryRun:         opts.DryRun,
		preview:        preview,
		pendingPlayers: make(map[players.Name]struct{}),
		pendingEvents:  make(map[eventKey]int64),
	}, nil
}

// DryRun reports whether writes are previewed instead of executed.
func (t *Tx) DryRun() bool {
	return t.dryRun
}

// Commit commits the transaction, or rolls it back in a dry run.
func (t *Tx) Commit() error {
	if t.dryRun {
		return t.Rollback()
	}
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback discards the transaction. Calling it after Commit is a no-op.
func (t *Tx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

// EnsurePlayer returns the player with this exact name, creating it when
// missing. created reports whether this call inserted (or would insert) it.
func (t *Tx) EnsurePlayer(ctx context.Context, name players.Name) (players.Player, bool, error) {
	if _, ok := t.pendingPlayers[name]; ok {
		return players.Player{ID: PendingID, First: name.First, Last: name.Last}, false, nil
	}
	existing, ok, err := t.FindExact(ctx, name)
	if err != nil {
		return players.Player{}, false, err
	}
	if ok {
		return existing, false, nil
	}
	id, err := t.CreatePlayer(ctx, name)
	if err != nil {
		return players.Player{}, false, err
	}
	return players.Player{ID: id, First: name.First, Last: name.Last}, true, nil
}

// CreatePlayer inserts a player and returns its id.
func (t *Tx) CreatePlayer(ctx context.Context, name players.Name) (int64, error) {
	const query = "INSERT INTO players (first_name, last_name) VALUES (?, ?) RETURNING id"
	args := []any{name.First, name.Last}
	if t.dryRun {
		t.pendingPlayers[name] = struct{}{}
		return PendingID, t.previewWrite("Create Player", query, args)
	}
	var id int64
	if err := t.q.QueryRowContext(ctx, t.d.sql(query), args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("create player %s: %w", name, err)
	}
	return id, nil
}

// EnsureEvent returns the id of the event matching (name, date, format),
// inserting ev with its own id when missing.
func (t *Tx) EnsureEvent(ctx context.Context, ev Event) (int64, bool, error) {
	key := eventKey{name: ev.Name, date: ev.Date, format: ev.Format}
	if id, ok := t.pendingEvents[key]; ok {
		return id, false, nil
	}
	id, ok, err := t.FindEvent(ctx, ev.Name, ev.Date, ev.Format)
	if err != nil {
		return 0, false, err
	}
	if ok {
		return id, false, nil
	}
	id, err = t.CreateEvent(ctx, ev)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// CreateEvent inserts ev and returns its id.
func (t *Tx) CreateEvent(ctx context.Context, ev Event) (int64, error) {
	const query = "INSERT INTO events (id, name, date, format) VALUES (?, ?, ?, ?) RETURNING id"
	args := []any{ev.ID, ev.Name, ev.Date, ev.Format}
	if t.dryRun {
		t.pendingEvents[eventKey{name: ev.Name, date: ev.Date, format: ev.Format}] = ev.ID
		return ev.ID, t.previewWrite("Create Event", query, args)
	}
	var id int64
	if err := t.q.QueryRowContext(ctx, t.d.sql(query), args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("create event %q: %w", ev.Name, err)
	}
	return id, nil
}

var insertResultSQL = "INSERT INTO results (" + strings.Join(resultColumns, ", ") + ") VALUES (" +
	strings.TrimSuffix(strings.Repeat("?, ", len(resultColumns)), ", ") + ")"

// InsertResult inserts one results row.
func (t *Tx) InsertResult(ctx context.Context, r Result) error {
	args := r.args()
	if t.dryRun {
		return t.previewWrite("Insert Result", insertResultSQL, args)
	}
	if _, err := t.q.ExecContext(ctx, t.d.sql(insertResultSQL), args...); err != nil {
		return fmt.Errorf("insert result for player %d at event %d: %w", r.PlayerID, r.EventID, err)
	}
	return nil
}

// QualificationExists reports whether player already qualified via event. A
// pending player has no rows yet.
func (t *Tx) QualificationExists(ctx context.Context, playerID, eventID int64) (bool, error) {
	if playerID == PendingID {
		return false, nil
	}
	return t.queries.QualificationExists(ctx, playerID, eventID)
}

// AddQualification records a notable qualification.
func (t *Tx) AddQualification(ctx context.Context, playerID, eventID int64) error {
	const query = "INSERT INTO notable_qualifications (player_id, event_id) VALUES (?, ?)"
	args := []any{playerID, eventID}
	if t.dryRun {
		return t.previewWrite("Add Qualification", query, args)
	}
	if _, err := t.q.ExecContext(ctx, t.d.sql(query), args...); err != nil {
		return fmt.Errorf("add qualification for player %d at event %d: %w", playerID, eventID, err)
	}
	return nil
}

func (t *Tx) previewWrite(action, query string, args []any) error {
	_, err := fmt.Fprintf(t.preview, "\n-- %s SQL:\n%s;\n", action, RenderSQL(query, args))
	return err
}
