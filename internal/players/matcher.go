package players

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"protracker/internal/logging"
)

// Matcher finds stored players that may duplicate a candidate name.
type Matcher struct {
	lookup Lookup
	logger *slog.Logger
}

// NewMatcher builds a matcher over lookup.
func NewMatcher(lookup Lookup, logger *slog.Logger) *Matcher {
	return &Matcher{
		lookup: lookup,
		logger: logging.NewComponentLogger(logger, "matcher"),
	}
}

type playerKey struct {
	id    int64
	first string
	last  string
}

// seenSet tracks reported players by (id, first, last).
type seenSet map[playerKey]struct{}

func (s seenSet) add(p Player) bool {
	key := playerKey{id: p.ID, first: p.First, last: p.Last}
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

type collector struct {
	name    Name
	seen    seenSet
	matches []Match
}

func (c *collector) add(p Player, reason string) {
	if p.First == c.name.First && p.Last == c.name.Last {
		return
	}
	if !c.seen.add(p) {
		return
	}
	c.matches = append(c.matches, Match{Player: p, Reason: reason})
}

// FindSimilar returns stored players that plausibly duplicate name, in
// heuristic order. Players identical to name are never reported and no
// player is reported twice.
func (m *Matcher) FindSimilar(ctx context.Context, name Name) ([]Match, error) {
	c := &collector{name: name, seen: make(seenSet)}

	caseSteps := []struct {
		fold   Fold
		reason string
	}{
		{FoldFirst, ReasonCaseFirst},
		{FoldLast, ReasonCaseLast},
		{FoldBoth, ReasonCaseBoth},
	}
	for _, step := range caseSteps {
		found, err := m.lookup.FindCaseInsensitive(ctx, name, step.fold)
		if err != nil {
			return nil, fmt.Errorf("%s lookup for %s: %w", step.reason, name, err)
		}
		for _, p := range found {
			c.add(p, step.reason)
		}
	}

	found, err := m.lookup.FindAccentInsensitive(ctx, name)
	switch {
	case errors.Is(err, ErrAccentFoldingUnavailable):
		m.logger.Debug("accent-insensitive lookup skipped", logging.String("player", name.String()))
	case err != nil:
		return nil, fmt.Errorf("accent-insensitive lookup for %s: %w", name, err)
	default:
		for _, p := range found {
			c.add(p, ReasonAccent)
		}
	}

	sameLast, err := m.lookup.FindByLastName(ctx, name.Last)
	if err != nil {
		return nil, fmt.Errorf("last name lookup for %s: %w", name, err)
	}
	for _, p := range sameLast {
		if reason, ok := containment(name.First, p.First); ok {
			c.add(p, reason)
		}
	}

	return c.matches, nil
}

// containment compares first names lower-cased; ok is false when neither
// contains the other.
func containment(input, stored string) (string, bool) {
	in := strings.ToLower(input)
	st := strings.ToLower(stored)
	switch {
	case in == st:
		return ReasonCaseDifference, true
	case strings.Contains(st, in):
		return containsReason(stored, input), true
	case strings.Contains(in, st):
		return containsReason(input, stored), true
	default:
		return "", false
	}
}
