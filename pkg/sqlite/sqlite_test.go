package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestDriverPragmas(t *testing.T) {
	// WAL needs a file database; :memory: always reports "memory"
	db, err := sql.Open(DriverName, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("Failed to query journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("Expected journal_mode wal, got %q", mode)
	}

	var timeout int
	if err := db.QueryRow("PRAGMA busy_timeout").Scan(&timeout); err != nil {
		t.Fatalf("Failed to query busy_timeout: %v", err)
	}
	if timeout != 5000 {
		t.Errorf("Expected busy_timeout 5000, got %d", timeout)
	}
}

func TestDriverRoundTrip(t *testing.T) {
	db, err := sql.Open(DriverName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	// every :memory: connection is its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE lines (id INTEGER PRIMARY KEY AUTOINCREMENT, line TEXT NOT NULL)`); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`INSERT INTO lines (line) VALUES (?)`, "ls"); err != nil {
		t.Fatal(err)
	}

	var line string
	if err := db.QueryRow(`SELECT line FROM lines WHERE id = 1`).Scan(&line); err != nil {
		t.Fatal(err)
	}
	if line != "ls" {
		t.Errorf("Expected 'ls', got %q", line)
	}
}
