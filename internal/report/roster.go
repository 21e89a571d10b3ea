package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"protracker/internal/players"
	"protracker/internal/reconcile"
)

const ruleWidth = 70

// Reconciliation writes the find-new-players report.
func Reconciliation(w io.Writer, res reconcile.Result, colorize bool) error {
	var b strings.Builder
	banner := strings.Repeat("=", ruleWidth)
	divider := strings.Repeat("-", ruleWidth)

	fmt.Fprintf(&b, "%s\nRESULTS\n%s\n\n", banner, banner)

	if len(res.New) > 0 {
		fmt.Fprintf(&b, "NEW PLAYERS (not in database - exact match): %d\n%s\n", len(res.New), divider)
		for _, name := range res.New {
			fmt.Fprintf(&b, "  %s\n", name)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("NEW PLAYERS: None\n\n")
	}

	if len(res.Similar) > 0 {
		fmt.Fprintf(&b, "POTENTIAL MATCHES (from new players list): %d\n%s\n", len(res.Similar), divider)
		for _, candidate := range res.Similar {
			fmt.Fprintf(&b, "\n  %s\n", candidate.Name)
			for _, m := range candidate.Matches {
				fmt.Fprintf(&b, "    %s\n", MatchLine(m))
			}
		}
		b.WriteString("\n")
	} else {
		b.WriteString("POTENTIAL MATCHES: None\n\n")
	}

	if len(res.Existing) > 0 {
		fmt.Fprintf(&b, "EXISTING PLAYERS (already in database - exact match): %d\n%s\n", len(res.Existing), divider)
		for _, name := range res.Existing {
			fmt.Fprintf(&b, "  %s\n", name)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total players in CSV: %d\n\n", res.Total())

	for _, line := range SectionHeader("SUMMARY", colorize) {
		b.WriteString(line + "\n")
	}
	rows := [][]string{
		{"New players (no exact match)", strconv.Itoa(len(res.New))},
		{"  with potential similar matches", strconv.Itoa(len(res.Similar))},
		{"  no similar matches found", strconv.Itoa(len(res.New) - len(res.Similar))},
		{"Existing players (exact match)", strconv.Itoa(len(res.Existing))},
	}
	b.WriteString(Table([]string{"Category", "Count"}, rows, []Alignment{AlignLeft, AlignRight}))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// MatchLine renders one potential duplicate.
func MatchLine(m players.Match) string {
	return fmt.Sprintf("-> %s %s (ID: %d) [%s]", m.First, m.Last, m.ID, m.Reason)
}
