package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"protracker/internal/ingest"
	"protracker/internal/players"
	"protracker/internal/qualify"
	"protracker/internal/reconcile"
)

func TestStatusLineNoColor(t *testing.T) {
	got := StatusLine("Dry run", KindWarn, "no changes", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Dry run:", "[WARN] no changes")
	if got != want {
		t.Fatalf("StatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestStatusLineWithColor(t *testing.T) {
	got := StatusLine("Database", KindOK, "committed", true)
	if !strings.HasPrefix(got, ansiGreen) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected green line, got %q", got)
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if ShouldColorize(io.Discard) {
		t.Fatal("expected non-file writer to disable color")
	}
}

func TestReconciliationLayout(t *testing.T) {
	res := reconcile.Result{
		New: []players.Name{{First: "Jonathan", Last: "Smith"}},
		Similar: []reconcile.Candidate{{
			Name: players.Name{First: "Jonathan", Last: "Smith"},
			Matches: []players.Match{{
				Player: players.Player{ID: 7, First: "Jon", Last: "Smith"},
				Reason: "same last name, 'Jonathan' contains 'Jon'",
			}},
		}},
		Existing: []players.Name{{First: "Reid", Last: "Duke"}},
	}
	var buf bytes.Buffer
	if err := Reconciliation(&buf, res, false); err != nil {
		t.Fatalf("Reconciliation: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"NEW PLAYERS (not in database - exact match): 1",
		"  Jonathan Smith\n",
		"POTENTIAL MATCHES (from new players list): 1",
		"    -> Jon Smith (ID: 7) [same last name, 'Jonathan' contains 'Jon']",
		"EXISTING PLAYERS (already in database - exact match): 1",
		"Total players in CSV: 2",
		"== SUMMARY ==",
		"no similar matches found",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("unexpected ANSI codes without colour")
	}
}

func TestReconciliationEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Reconciliation(&buf, reconcile.Result{}, false); err != nil {
		t.Fatalf("Reconciliation: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "NEW PLAYERS: None") || !strings.Contains(out, "POTENTIAL MATCHES: None") {
		t.Fatalf("unexpected empty report:\n%s", out)
	}
	if strings.Contains(out, "EXISTING PLAYERS") {
		t.Fatalf("existing section should be omitted:\n%s", out)
	}
}

func TestRunSummaries(t *testing.T) {
	var buf bytes.Buffer
	if err := Import(&buf, ingest.Summary{Rows: 1, ResultsWritten: 1, DryRun: true, LimitReached: true}, false); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !strings.Contains(buf.String(), "Results inserted") || !strings.Contains(buf.String(), "[WARN] no changes were made") {
		t.Fatalf("unexpected import summary:\n%s", buf.String())
	}

	buf.Reset()
	if err := Qualifications(&buf, qualify.Summary{Processed: 2, Added: 1, Skipped: 1}, 13, false); err != nil {
		t.Fatalf("Qualifications: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "EVENT 13") || !strings.Contains(out, "[OK] changes committed") {
		t.Fatalf("unexpected qualification summary:\n%s", out)
	}
}
