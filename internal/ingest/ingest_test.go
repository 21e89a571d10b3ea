package ingest

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"protracker/internal/faults"
	"protracker/internal/logging"
	"protracker/internal/players"
	"protracker/internal/testsupport"
	"protracker/internal/tourdb"
)

// sheetCSV renders a header with every column plus Notes and one line per
// row; cells not named in a row are left blank.
func sheetCSV(rows ...map[string]string) string {
	header := append(append([]string(nil), requiredColumns...), colNotes)
	lines := []string{strings.Join(header, ",")}
	for _, r := range rows {
		cells := make([]string, len(header))
		for i, column := range header {
			cells[i] = r[column]
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n") + "\n"
}

func resultRow(first, last string) map[string]string {
	return map[string]string{
		colEvent:       "Pro Tour Thunder Junction",
		colEventDate:   "26/4/2024",
		colEventFormat: "Standard",
		colEventNumber: "21",
		colFirst:       first,
		colLast:        last,
		colDay2:        "1",
		colTop8:        "0",
		colOverallWins: "11",
		colOverallRec:  "11-5-0",
		colTeam:        "",
		colDeck:        "Esper Midrange",
	}
}

func newImporter(t *testing.T) (*Importer, *tourdb.DB) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	db := testsupport.MustOpenDB(t, cfg)
	return New(db, logging.NewNop()), db
}

func TestRunImportsRows(t *testing.T) {
	im, db := newImporter(t)
	ctx := context.Background()
	testsupport.SeedPlayers(t, db, players.Name{First: "Reid", Last: "Duke"})

	team := resultRow("Seth", "Manfield")
	team[colTeam] = "Handshake"
	src := sheetCSV(resultRow("Reid", "Duke"), team, resultRow("  Seth ", "Manfield"))

	summary, err := im.Run(ctx, strings.NewReader(src), Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rows != 3 || summary.ResultsWritten != 3 {
		t.Fatalf("unexpected counts %+v", summary)
	}
	if summary.EventsCreated != 1 || summary.PlayersCreated != 1 {
		t.Fatalf("unexpected creations %+v", summary)
	}

	id, ok, err := db.FindEvent(ctx, "Pro Tour Thunder Junction", "2024-04-26", "Standard")
	if err != nil || !ok || id != 21 {
		t.Fatalf("event lookup id=%d ok=%v err=%v", id, ok, err)
	}
	if _, ok, err := db.FindExact(ctx, players.Name{First: "Seth", Last: "Manfield"}); err != nil || !ok {
		t.Fatalf("player lookup ok=%v err=%v", ok, err)
	}
}

func TestRunHonoursLimit(t *testing.T) {
	im, db := newImporter(t)
	ctx := context.Background()
	src := sheetCSV(resultRow("Reid", "Duke"), resultRow("Ben", "Stark"))

	summary, err := im.Run(ctx, strings.NewReader(src), Options{Limit: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rows != 1 || !summary.LimitReached {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if _, ok, _ := db.FindExact(ctx, players.Name{First: "Ben", Last: "Stark"}); ok {
		t.Fatal("row past the limit was imported")
	}
}

func TestRunLimitMatchingSheetLengthIsNotTruncation(t *testing.T) {
	im, _ := newImporter(t)
	ctx := context.Background()

	summary, err := im.Run(ctx, strings.NewReader(sheetCSV(resultRow("Reid", "Duke"))), Options{Limit: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Rows != 1 || summary.ResultsWritten != 1 {
		t.Fatalf("unexpected counts %+v", summary)
	}
	if summary.LimitReached {
		t.Fatal("limit flagged although the sheet had no more rows")
	}
}

func TestRunDryRunPreviewsSQL(t *testing.T) {
	im, db := newImporter(t)
	ctx := context.Background()
	var preview bytes.Buffer

	summary, err := im.Run(ctx, strings.NewReader(sheetCSV(resultRow("Reid", "Duke"))), Options{DryRun: true, Preview: &preview})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !summary.DryRun || summary.PlayersCreated != 1 || summary.EventsCreated != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
	out := preview.String()
	for _, want := range []string{"-- Create Event SQL:", "-- Create Player SQL:", "-- Insert Result SQL:", "'2024-04-26'", "NULL"} {
		if !strings.Contains(out, want) {
			t.Fatalf("preview missing %q:\n%s", want, out)
		}
	}
	if _, ok, _ := db.FindEvent(ctx, "Pro Tour Thunder Junction", "2024-04-26", "Standard"); ok {
		t.Fatal("dry run created an event")
	}
}

func TestRunRejectsMissingColumns(t *testing.T) {
	im, _ := newImporter(t)
	_, err := im.Run(context.Background(), strings.NewReader("Event,First,Last\nX,A,B\n"), Options{})
	if !errors.Is(err, faults.ErrInput) {
		t.Fatalf("err = %v, want ErrInput", err)
	}
	if !strings.Contains(err.Error(), "Event Date") {
		t.Fatalf("error should name missing column: %v", err)
	}
}

func TestRunRollsBackOnBadRow(t *testing.T) {
	im, db := newImporter(t)
	ctx := context.Background()
	src := sheetCSV(resultRow("Reid", "Duke"), resultRow("", "Nobody"))

	if _, err := im.Run(ctx, strings.NewReader(src), Options{}); !errors.Is(err, faults.ErrInput) {
		t.Fatalf("err = %v, want ErrInput", err)
	}
	if _, ok, _ := db.FindExact(ctx, players.Name{First: "Reid", Last: "Duke"}); ok {
		t.Fatal("earlier row survived a failed import")
	}
}

func TestParseRowCoercesValues(t *testing.T) {
	in := resultRow("Reid", "Duke")
	in[colEventDate] = "April 26"
	in[colLimitedWins] = "x"
	in[colNotes] = "  champion "
	src := sheetCSV(in)

	im, _ := newImporter(t)
	var preview bytes.Buffer
	if _, err := im.Run(context.Background(), strings.NewReader(src), Options{DryRun: true, Preview: &preview}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := preview.String()
	if !strings.Contains(out, "'April 26'") {
		t.Fatalf("unparsed date should pass through:\n%s", out)
	}
	if !strings.Contains(out, "'champion'") {
		t.Fatalf("notes should be trimmed:\n%s", out)
	}
	if !strings.Contains(out, "(-1, 21, true, false, 0,") {
		t.Fatalf("expected pending player, booleans and zero default:\n%s", out)
	}
}
