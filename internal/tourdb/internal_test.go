package tourdb

import "testing"

func TestParseDSN(t *testing.T) {
	tests := []struct {
		in      string
		backend Backend
		driver  string
	}{
		{"sqlite:///tmp/tour.db", BackendSQLite, "/tmp/tour.db"},
		{"sqlite:tour.db", BackendSQLite, "tour.db"},
		{"file:tour.db?cache=shared", BackendSQLite, "file:tour.db?cache=shared"},
		{":memory:", BackendSQLite, ":memory:"},
		{" ./data/tour.sqlite3 ", BackendSQLite, "./data/tour.sqlite3"},
		{"postgres://user:pw@localhost/tour", BackendPostgres, "postgres://user:pw@localhost/tour"},
		{"host=localhost dbname=tour", BackendPostgres, "host=localhost dbname=tour"},
	}
	for _, tt := range tests {
		backend, driver, err := ParseDSN(tt.in)
		if err != nil {
			t.Fatalf("ParseDSN(%q): %v", tt.in, err)
		}
		if backend != tt.backend || driver != tt.driver {
			t.Fatalf("ParseDSN(%q) = %q %q, want %q %q", tt.in, backend, driver, tt.backend, tt.driver)
		}
	}
	if _, _, err := ParseDSN("  "); err == nil {
		t.Fatal("expected error for empty connection string")
	}
}

func TestDialectRebindsForPostgres(t *testing.T) {
	pg := dialect{backend: BackendPostgres}
	got := pg.sql("SELECT id FROM players WHERE " + pg.foldEq("first_name") + " AND last_name = ?")
	want := "SELECT id FROM players WHERE first_name ILIKE $1 AND last_name = $2"
	if got != want {
		t.Fatalf("sql = %q, want %q", got, want)
	}
	if got := pg.foldArg(`50%_off\`); got != `50\%\_off\\` {
		t.Fatalf("foldArg = %q", got)
	}

	lite := dialect{backend: BackendSQLite}
	if got := lite.sql("a = ?"); got != "a = ?" {
		t.Fatalf("sqlite sql = %q", got)
	}
	if got := lite.foldArg("50%"); got != "50%" {
		t.Fatalf("sqlite foldArg = %q", got)
	}
}

func TestRenderSQL(t *testing.T) {
	team := "It's Team"
	var notes *string
	got := RenderSQL("INSERT INTO t VALUES (?, ?, ?, ?, ?)", []any{int64(7), "O'Neil", true, &team, notes})
	want := "INSERT INTO t VALUES (7, 'O''Neil', true, 'It''s Team', NULL)"
	if got != want {
		t.Fatalf("RenderSQL = %q, want %q", got, want)
	}
}
