package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLiteOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	b, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSQLiteEmptyRecord(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	score, at, err := b.Record()
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if score != 0 || !at.IsZero() {
		t.Errorf("Record() on empty table = (%d, %v), expected (0, zero time)", score, at)
	}
}

func TestSQLiteSingleRow(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	for _, v := range []int{5, 20, 12} {
		if err := b.Write(v); err != nil {
			t.Fatalf("Write(%d) failed: %v", v, err)
		}
	}

	var rows int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM high_score").Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("high_score has %d rows, expected 1", rows)
	}

	// Last write wins; the session decides whether a value is an improvement
	got, err := b.Read()
	if err != nil || got != 12 {
		t.Errorf("Read() = (%d, %v), expected (12, nil)", got, err)
	}
}

func TestSQLiteRejectsNegative(t *testing.T) {
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	defer b.Close()

	if err := b.Write(-3); err == nil {
		t.Error("Write(-3) should violate the CHECK constraint")
	}
}
