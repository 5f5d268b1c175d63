package audit

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	store, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}

	ctx := context.Background()
	stages := []string{"ingest", "classify", "scale", "geometry"}
	for i, stage := range stages {
		store.Emit(ctx, Record{
			JobID:          "job-1",
			Stage:          stage,
			InputsSummary:  "in",
			OutputsSummary: "out",
			Confidence:     0.5 + float64(i)*0.1,
			Duration:       time.Duration(i+1) * time.Millisecond,
			Timestamp:      time.Now().UTC(),
		})
	}
	// Close drains the buffer before returning
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.Query(`SELECT stage FROM stage_audit WHERE job_id = ? ORDER BY id`, "job-1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var got []string
	for rows.Next() {
		var stage string
		if err := rows.Scan(&stage); err != nil {
			t.Fatal(err)
		}
		got = append(got, stage)
	}
	if len(got) != len(stages) {
		t.Fatalf("persisted %d records, want %d", len(got), len(stages))
	}
	for i := range stages {
		if got[i] != stages[i] {
			t.Errorf("record %d = %s, want %s (order must be preserved)", i, got[i], stages[i])
		}
	}
}
