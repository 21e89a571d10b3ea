package report

import (
	"io"
	"strconv"
	"strings"

	"protracker/internal/ingest"
	"protracker/internal/qualify"
)

// Import writes the ingest-results summary.
func Import(w io.Writer, s ingest.Summary, colorize bool) error {
	var b strings.Builder
	for _, line := range SectionHeader("Results Import", colorize) {
		b.WriteString(line + "\n")
	}
	rows := [][]string{
		{"Rows processed", strconv.Itoa(s.Rows)},
		{"Events created", strconv.Itoa(s.EventsCreated)},
		{"Players created", strconv.Itoa(s.PlayersCreated)},
		{"Results inserted", strconv.Itoa(s.ResultsWritten)},
	}
	b.WriteString(Table([]string{"Step", "Count"}, rows, []Alignment{AlignLeft, AlignRight}))
	b.WriteString("\n")
	if s.LimitReached {
		b.WriteString(StatusLine("Row limit", KindWarn, "stopped before the end of the sheet", colorize) + "\n")
	}
	b.WriteString(outcomeLine(s.DryRun, colorize) + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// Qualifications writes the add-qualifications summary.
func Qualifications(w io.Writer, s qualify.Summary, eventID int64, colorize bool) error {
	var b strings.Builder
	for _, line := range SectionHeader("Notable Qualifications", colorize) {
		b.WriteString(line + "\n")
	}
	rows := [][]string{
		{"Players processed", strconv.Itoa(s.Processed)},
		{"New players created", strconv.Itoa(s.Created)},
		{"Qualifications added", strconv.Itoa(s.Added)},
		{"Qualifications skipped (already exist)", strconv.Itoa(s.Skipped)},
	}
	b.WriteString(Table([]string{"Event " + strconv.FormatInt(eventID, 10), "Count"}, rows, []Alignment{AlignLeft, AlignRight}))
	b.WriteString("\n")
	b.WriteString(outcomeLine(s.DryRun, colorize) + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func outcomeLine(dryRun bool, colorize bool) string {
	if dryRun {
		return StatusLine("Dry run", KindWarn, "no changes were made to the database", colorize)
	}
	return StatusLine("Database", KindOK, "changes committed", colorize)
}
