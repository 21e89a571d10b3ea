package players

import "context"

// Fold selects which name fields a case-insensitive lookup compares ignoring
// case. Fields not selected must match exactly.
type Fold uint8

const (
	FoldFirst Fold = 1 << iota
	FoldLast

	FoldBoth = FoldFirst | FoldLast
)

// Lookup is the data source the matcher queries. Implementations return rows
// in their natural retrieval order.
type Lookup interface {
	// FindExact returns the first player whose name matches byte for byte.
	FindExact(ctx context.Context, name Name) (Player, bool, error)
	// FindCaseInsensitive returns players equal to name with the selected
	// fields compared ignoring case.
	FindCaseInsensitive(ctx context.Context, name Name, fold Fold) ([]Player, error)
	// FindAccentInsensitive returns players equal to name ignoring both case
	// and diacritics, or ErrAccentFoldingUnavailable.
	FindAccentInsensitive(ctx context.Context, name Name) ([]Player, error)
	// FindByLastName returns players with exactly this last name.
	FindByLastName(ctx context.Context, last string) ([]Player, error)
}
