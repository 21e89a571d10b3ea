package tourdb

// PendingID stands in for the id of a row a dry run would have inserted.
const PendingID int64 = -1

// Event is an events row.
type Event struct {
	ID     int64
	Name   string
	Date   string
	Format string
}

// Result is one player's line for one event.
type Result struct {
	PlayerID int64
	EventID  int64

	Day2 bool
	Top8 bool

	LimitedWins   int
	LimitedLosses int
	LimitedDraws  int

	NumDrafts      int
	PositiveDrafts int
	NegativeDrafts int
	TrophyDrafts   int
	NoWinDrafts    int

	ConstructedWins   int
	ConstructedLosses int
	ConstructedDraws  int

	OverallWins   int
	OverallLosses int
	OverallDraws  int
	OverallRecord string

	Day1Wins   int
	Day1Losses int
	Day1Draws  int
	Day2Wins   int
	Day2Losses int
	Day2Draws  int
	Day3Wins   int
	Day3Losses int
	Day3Draws  int

	InContention bool
	WinStreak    int
	LossStreak   int
	Streak5      int

	Finish  int
	Summary string
	Team    *string
	Deck    string
	Notes   *string
}

var resultColumns = []string{
	"player_id", "event_id", "day2", "top8",
	"limited_wins", "limited_losses", "limited_draws",
	"num_drafts", "positive_drafts", "negative_drafts", "trophy_drafts", "no_win_drafts",
	"constructed_wins", "constructed_losses", "constructed_draws",
	"overall_wins", "overall_losses", "overall_draws", "overall_record",
	"day1_wins", "day1_losses", "day1_draws",
	"day2_wins", "day2_losses", "day2_draws",
	"day3_wins", "day3_losses", "day3_draws",
	"in_contention", "win_streak", "loss_streak", "streak5",
	"finish", "summary", "team", "deck", "notes",
}

// args returns values in resultColumns order.
func (r Result) args() []any {
	return []any{
		r.PlayerID, r.EventID, r.Day2, r.Top8,
		r.LimitedWins, r.LimitedLosses, r.LimitedDraws,
		r.NumDrafts, r.PositiveDrafts, r.NegativeDrafts, r.TrophyDrafts, r.NoWinDrafts,
		r.ConstructedWins, r.ConstructedLosses, r.ConstructedDraws,
		r.OverallWins, r.OverallLosses, r.OverallDraws, r.OverallRecord,
		r.Day1Wins, r.Day1Losses, r.Day1Draws,
		r.Day2Wins, r.Day2Losses, r.Day2Draws,
		r.Day3Wins, r.Day3Losses, r.Day3Draws,
		r.InContention, r.WinStreak, r.LossStreak, r.Streak5,
		r.Finish, r.Summary, r.Team, r.Deck, r.Notes,
	}
}
