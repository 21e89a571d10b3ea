package tourdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"protracker/internal/players"
)

// sqlStateUndefinedFunction is raised by PostgreSQL when unaccent() is missing.
const sqlStateUndefinedFunction = "42883"

// queries implements players.Lookup over a DB or Tx.
type queries struct {
	q      querier
	d      dialect
	accent bool
}

var _ players.Lookup = (*DB)(nil)

const selectPlayer = "SELECT id, first_name, last_name FROM players WHERE "

// FindExact returns the lowest-id player whose name matches exactly.
func (s *queries) FindExact(ctx context.Context, name players.Name) (players.Player, bool, error) {
	row := s.q.QueryRowContext(ctx,
		s.d.sql(selectPlayer+"first_name = ? AND last_name = ? ORDER BY id LIMIT 1"),
		name.First, name.Last,
	)
	var p players.Player
	if err := row.Scan(&p.ID, &p.First, &p.Last); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return players.Player{}, false, nil
		}
		return players.Player{}, false, fmt.Errorf("find player %s: %w", name, err)
	}
	return p, true, nil
}

// FindCaseInsensitive returns players matching name with the fields selected
// by fold compared ignoring case.
func (s *queries) FindCaseInsensitive(ctx context.Context, name players.Name, fold players.Fold) ([]players.Player, error) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if fold&players.FoldFirst != 0 {
		conds = append(conds, s.d.foldEq("first_name"))
		args = append(args, s.d.foldArg(name.First))
	} else {
		conds = append(conds, "first_name = ?")
		args = append(args, name.First)
	}
	if fold&players.FoldLast != 0 {
		conds = append(conds, s.d.foldEq("last_name"))
		args = append(args, s.d.foldArg(name.Last))
	} else {
		conds = append(conds, "last_name = ?")
		args = append(args, name.Last)
	}
	return s.selectPlayers(ctx, strings.Join(conds, " AND "), args...)
}

// FindAccentInsensitive returns players matching name ignoring case and
// diacritics, or players.ErrAccentFoldingUnavailable.
func (s *queries) FindAccentInsensitive(ctx context.Context, name players.Name) ([]players.Player, error) {
	if !s.accent {
		return nil, players.ErrAccentFoldingUnavailable
	}
	where := s.d.accentEq("first_name") + " AND " + s.d.accentEq("last_name")
	found, err := s.selectPlayers(ctx, where, s.d.foldArg(name.First), s.d.foldArg(name.Last))
	if isUndefinedFunction(err) {
		return nil, fmt.Errorf("%w: %w", players.ErrAccentFoldingUnavailable, err)
	}
	return found, err
}

// FindByLastName returns players with exactly this last name.
func (s *queries) FindByLastName(ctx context.Context, last string) ([]players.Player, error) {
	return s.selectPlayers(ctx, "last_name = ?", last)
}

func (s *queries) selectPlayers(ctx context.Context, where string, args ...any) ([]players.Player, error) {
	rows, err := s.q.QueryContext(ctx, s.d.sql(selectPlayer+where+" ORDER BY id"), args...)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var out []players.Player
	for rows.Next() {
		var p players.Player
		if err := rows.Scan(&p.ID, &p.First, &p.Last); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}
	return out, nil
}

// FindEvent returns the id of the event with this name, date and format.
func (s *queries) FindEvent(ctx context.Context, name, date, format string) (int64, bool, error) {
	var id int64
	err := s.q.QueryRowContext(ctx,
		s.d.sql("SELECT id FROM events WHERE name = ? AND date = ? AND format = ? ORDER BY id LIMIT 1"),
		name, date, format,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find event %q: %w", name, err)
	}
	return id, true, nil
}

// QualificationExists reports whether player already qualified via event.
func (s *queries) QualificationExists(ctx context.Context, playerID, eventID int64) (bool, error) {
	var id int64
	err := s.q.QueryRowContext(ctx,
		s.d.sql("SELECT id FROM notable_qualifications WHERE player_id = ? AND event_id = ? LIMIT 1"),
		playerID, eventID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check qualification for player %d: %w", playerID, err)
	}
	return true, nil
}

func isUndefinedFunction(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateUndefinedFunction
}
