package ingest

// Sheet column headers.
const (
	colEvent        = "Event"
	colEventDate    = "Event Date"
	colEventFormat  = "Format of Event"
	colEventNumber  = "Event #"
	colFirst        = "First"
	colLast         = "Last"
	colDay2         = "Day 2"
	colTop8         = "Top 8"
	colLimitedWins  = "Limited Wins"
	colLimitedLoss  = "Limited Loses"
	colLimitedDraws = "Limited Draws"
	colDrafts       = "Drafts"
	colPositive     = "Positive Record"
	colLosing       = "Losing Record"
	colTrophies     = "# of Trophy"
	colNoWin        = "0-3"
	colConsWins     = "Constructed Wins"
	colConsLoss     = "Constructed Loses"
	colConsDraws    = "Constructed Draws"
	colOverallWins  = "Overall Wins"
	colOverallLoss  = "Overall Loses"
	colOverallDraws = "Overall Draws"
	colOverallRec   = "Overall Record"
	colD1W          = "D1 W"
	colD1L          = "D1 L"
	colD1D          = "D1 D"
	colD2W          = "D2 W"
	colD2L          = "D2 L"
	colD2D          = "D2 D"
	colD3W          = "D3 W"
	colD3L          = "D3 L"
	colD3D          = "D3 D"
	colContention   = "In contention"
	colWinStreak    = "W Streak"
	colLossStreak   = "L Streak"
	colStreak5      = "5 win St"
	colRank         = "Rank"
	colSummary      = "Summary"
	colTeam         = "Team"
	colDeck         = "Deck"
	colNotes        = "Notes"
)

// requiredColumns must appear in the header. Notes is optional.
var requiredColumns = []string{
	colEvent, colEventDate, colEventFormat, colEventNumber,
	colFirst, colLast, colDay2, colTop8,
	colLimitedWins, colLimitedLoss, colLimitedDraws,
	colDrafts, colPositive, colLosing, colTrophies, colNoWin,
	colConsWins, colConsLoss, colConsDraws,
	colOverallWins, colOverallLoss, colOverallDraws, colOverallRec,
	colD1W, colD1L, colD1D,
	colD2W, colD2L, colD2D,
	colD3W, colD3L, colD3D,
	colContention, colWinStreak, colLossStreak, colStreak5,
	colRank, colSummary, colTeam, colDeck,
}
