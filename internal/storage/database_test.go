package storage

import (
	"context"
	"testing"

	"feebank/internal/config"
)

func TestOpenAndMigrateSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{Databases: map[string]config.DatabaseConfig{"sqlite3": {DSN: ":memory:"}}}

	db, err := Open(ctx, "sqlite", cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, db, "sqlite3"); err != nil {
			t.Fatalf("Migrate run %d: %v", i, err)
		}
	}
	for _, table := range []string{"portal_records", "feedback", "attendance_undertakings"} {
		var name string
		err := db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{Databases: map[string]config.DatabaseConfig{"postgres": {DSN: "x"}}}
	if _, err := Open(context.Background(), "postgres", cfg); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
	if _, err := Open(context.Background(), "mysql", &config.Config{}); err == nil {
		t.Fatalf("expected missing config error")
	}
}

func TestDriver(t *testing.T) {
	cases := map[string]string{"sqlite": "sqlite3", "SQLite3": "sqlite3", "mysql": "mysql"}
	for in, want := range cases {
		if got := Driver(in); got != want {
			t.Errorf("Driver(%q) = %q, want %q", in, got, want)
		}
	}
}
