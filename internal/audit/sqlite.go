package audit

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Schema for the stage_audit table. Call SQLiteStore.Init() or apply manually.
const Schema = `
CREATE TABLE IF NOT EXISTS stage_audit (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	job_id TEXT NOT NULL,
	stage TEXT NOT NULL,
	inputs_summary TEXT,
	outputs_summary TEXT,
	confidence REAL,
	duration_us INTEGER NOT NULL,
	timestamp INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_stage_audit_job ON stage_audit(job_id);
CREATE INDEX IF NOT EXISTS idx_stage_audit_ts ON stage_audit(timestamp);
`

// SQLiteStore persists audit records to a SQLite table asynchronously.
// Emit never blocks the pipeline; if the buffer is full the record is
// dropped from storage (the slog sink still sees it).
type SQLiteStore struct {
	db   *sql.DB
	ch   chan Record
	done chan struct{}
	once sync.Once
}

// OpenSQLiteStore opens (or creates) the audit database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := NewSQLiteStore(db)
	if err := s.Init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	s := &SQLiteStore{
		db:   db,
		ch:   make(chan Record, 1024),
		done: make(chan struct{}),
	}
	go s.flushLoop()
	return s
}

// Init creates the stage_audit table if it doesn't exist.
func (s *SQLiteStore) Init() error {
	_, err := s.db.Exec(Schema)
	return err
}

func (s *SQLiteStore) Emit(_ context.Context, rec Record) {
	select {
	case s.ch <- rec:
	default:
	}
}

// Close drains the buffer and stops the flush goroutine.
func (s *SQLiteStore) Close() error {
	s.once.Do(func() {
		close(s.ch)
		<-s.done
	})
	return s.db.Close()
}

func (s *SQLiteStore) flushLoop() {
	defer close(s.done)

	batch := make([]Record, 0, 64)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case rec, ok := <-s.ch:
			if !ok {
				s.flushBatch(batch)
				return
			}
			batch = append(batch, rec)
			if len(batch) >= 64 {
				s.flushBatch(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				s.flushBatch(batch)
				batch = batch[:0]
			}
		}
	}
}

func (s *SQLiteStore) flushBatch(batch []Record) {
	if len(batch) == 0 {
		return
	}

	tx, err := s.db.Begin()
	if err != nil {
		slog.Error("audit store: begin tx", "error", err)
		return
	}

	stmt, err := tx.Prepare(`INSERT INTO stage_audit (job_id, stage, inputs_summary, outputs_summary, confidence, duration_us, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		slog.Error("audit store: prepare", "error", err)
		return
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, rec := range batch {
		if _, err := stmt.Exec(rec.JobID, rec.Stage, rec.InputsSummary, rec.OutputsSummary,
			rec.Confidence, rec.Duration.Microseconds(), rec.Timestamp.UnixMicro()); err != nil {
			slog.Error("audit store: insert", "error", err)
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("audit store: commit", "error", err)
	}
}
