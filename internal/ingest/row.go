package ingest

import (
	"fmt"

	"protracker/internal/players"
	"protracker/internal/roster"
	"protracker/internal/tourdb"
)

// row is one parsed sheet line. result.PlayerID and result.EventID are filled
// in once the player and event are resolved.
type row struct {
	line      int
	event     tourdb.Event
	player    players.Name
	result    tourdb.Result
	rawDate   string
	dateValid bool
}

func parseRow(rec roster.Record) (row, error) {
	name, err := players.NewName(rec.Get(colFirst), rec.Get(colLast))
	if err != nil {
		return row{}, fmt.Errorf("line %d: %w", rec.Line, err)
	}
	date, ok := roster.Date(rec.Get(colEventDate))

	return row{
		line: rec.Line,
		event: tourdb.Event{
			ID:     int64(rec.Int(colEventNumber)),
			Name:   rec.Text(colEvent),
			Date:   date,
			Format: rec.Text(colEventFormat),
		},
		player:    name,
		rawDate:   rec.Text(colEventDate),
		dateValid: ok,
		result: tourdb.Result{
			Day2: rec.Bool(colDay2),
			Top8: rec.Bool(colTop8),

			LimitedWins:   rec.Int(colLimitedWins),
			LimitedLosses: rec.Int(colLimitedLoss),
			LimitedDraws:  rec.Int(colLimitedDraws),

			NumDrafts:      rec.Int(colDrafts),
			PositiveDrafts: rec.Int(colPositive),
			NegativeDrafts: rec.Int(colLosing),
			TrophyDrafts:   rec.Int(colTrophies),
			NoWinDrafts:    rec.Int(colNoWin),

			ConstructedWins:   rec.Int(colConsWins),
			ConstructedLosses: rec.Int(colConsLoss),
			ConstructedDraws:  rec.Int(colConsDraws),

			OverallWins:   rec.Int(colOverallWins),
			OverallLosses: rec.Int(colOverallLoss),
			OverallDraws:  rec.Int(colOverallDraws),
			OverallRecord: rec.Text(colOverallRec),

			Day1Wins:   rec.Int(colD1W),
			Day1Losses: rec.Int(colD1L),
			Day1Draws:  rec.Int(colD1D),
			Day2Wins:   rec.Int(colD2W),
			Day2Losses: rec.Int(colD2L),
			Day2Draws:  rec.Int(colD2D),
			Day3Wins:   rec.Int(colD3W),
			Day3Losses: rec.Int(colD3L),
			Day3Draws:  rec.Int(colD3D),

			InContention: rec.Bool(colContention),
			WinStreak:    rec.Int(colWinStreak),
			LossStreak:   rec.Int(colLossStreak),
			Streak5:      rec.Int(colStreak5),

			Finish:  rec.Int(colRank),
			Summary: rec.Text(colSummary),
			Team:    rec.Optional(colTeam),
			Deck:    rec.Text(colDeck),
			Notes:   rec.Optional(colNotes),
		},
	}, nil
}
