package players

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAccentFoldingUnavailable is returned by a Lookup whose engine cannot
// compare names with diacritics removed.
var ErrAccentFoldingUnavailable = errors.New("accent folding unavailable")

// Name is a (first, last) candidate name pair.
type Name struct {
	First string
	Last  string
}

// NewName trims both parts and rejects blanks.
func NewName(first, last string) (Name, error) {
	n := Name{First: strings.TrimSpace(first), Last: strings.TrimSpace(last)}
	if n.First == "" || n.Last == "" {
		return Name{}, fmt.Errorf("player name requires first and last: %q %q", first, last)
	}
	return n, nil
}

func (n Name) String() string {
	return n.First + " " + n.Last
}

// Player is a stored players row.
type Player struct {
	ID    int64
	First string
	Last  string
}

// Name returns the stored name pair.
func (p Player) Name() Name {
	return Name{First: p.First, Last: p.Last}
}

// Match is a stored player flagged as a possible duplicate of a candidate.
type Match struct {
	Player
	Reason string
}

// Fixed match reasons. ReasonCaseDifference is only produced when the case
// lookup missed a record that strings.ToLower still equates, which happens
// with backends whose case folding disagrees with Go's.
const (
	ReasonCaseFirst      = "case-insensitive first name"
	ReasonCaseLast       = "case-insensitive last name"
	ReasonCaseBoth       = "case-insensitive both names"
	ReasonAccent         = "accent-insensitive"
	ReasonCaseDifference = "same last name, case difference in first name"
)

// containsReason labels a same-last-name hit where outer contains inner.
func containsReason(outer, inner string) string {
	return fmt.Sprintf("same last name, '%s' contains '%s'", outer, inner)
}
