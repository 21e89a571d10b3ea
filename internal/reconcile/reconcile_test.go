package reconcile_test

import (
	"context"
	"strings"
	"testing"

	"protracker/internal/logging"
	"protracker/internal/players"
	"protracker/internal/reconcile"
	"protracker/internal/roster"
	"protracker/internal/testsupport"
)

func TestRunPartitionsRoster(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	db := testsupport.MustOpenDB(t, cfg)
	testsupport.SeedPlayers(t, db,
		players.Name{First: "Reid", Last: "Duke"},
		players.Name{First: "Jon", Last: "Smith"},
		players.Name{First: "Ana", Last: "Álvarez"},
	)

	entries, err := roster.ReadNames(strings.NewReader(
		"Reid,Duke\n" +
			"Zed,Adams\n" +
			"Jonathan,Smith\n" +
			"ana,alvarez\n" +
			"solo\n" +
			" , Blank\n",
	))
	if err != nil {
		t.Fatalf("ReadNames: %v", err)
	}

	res, err := reconcile.New(db, logging.NewNop()).Run(context.Background(), entries)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.Total() != 4 {
		t.Fatalf("Total = %d, want 4", res.Total())
	}
	if len(res.Existing) != 1 || res.Existing[0] != (players.Name{First: "Reid", Last: "Duke"}) {
		t.Fatalf("Existing = %+v", res.Existing)
	}
	wantNew := []players.Name{
		{First: "Zed", Last: "Adams"},
		{First: "Jonathan", Last: "Smith"},
		{First: "ana", Last: "alvarez"},
	}
	if len(res.New) != len(wantNew) {
		t.Fatalf("New = %+v", res.New)
	}
	for i := range wantNew {
		if res.New[i] != wantNew[i] {
			t.Fatalf("New[%d] = %+v, want %+v", i, res.New[i], wantNew[i])
		}
	}

	if len(res.Similar) != 2 {
		t.Fatalf("Similar = %+v", res.Similar)
	}
	contains := res.Similar[0]
	if contains.Name.Last != "Smith" || contains.Matches[0].Reason != "same last name, 'Jonathan' contains 'Jon'" {
		t.Fatalf("containment candidate = %+v", contains)
	}
	accent := res.Similar[1]
	if accent.Name.Last != "alvarez" || accent.Matches[0].Reason != players.ReasonAccent {
		t.Fatalf("accent candidate = %+v", accent)
	}
}
