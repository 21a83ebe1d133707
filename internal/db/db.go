// Package db stores sessions, score results, and the drill prescription
// table in sqlite. Score results are keyed by session id with upsert
// semantics: the engine is deterministic, so re-delivery of a session is a
// safe overwrite, never an error.
package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
}

// NewDB opens (or creates) the sqlite database at path and bootstraps the
// baseline schema. Versioned changes beyond the baseline run through
// MigrateUp.
func NewDB(path string) (*DB, error) {
	// Serialized access keeps upserts from racing under the batch worker.
	// The pragmas go in the DSN so they apply to every pooled connection,
	// not just the one an Exec happens to run on.
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(baselineSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

const baselineSchema = `
	CREATE TABLE IF NOT EXISTS sessions (
		session_id   TEXT PRIMARY KEY,
		player       TEXT,
		source       TEXT,
		recorded_at  TIMESTAMP,
		created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS score_results (
		session_id        TEXT PRIMARY KEY,
		run_id            TEXT,
		brain             INTEGER,
		body              INTEGER,
		bat               INTEGER,
		ball              INTEGER,
		composite         INTEGER,
		weakest_category  TEXT,
		leak_type         TEXT,
		leak_caption      TEXT,
		leak_instruction  TEXT,
		motor_profile     TEXT,
		swing_count       INTEGER,
		data_quality      TEXT,
		raw_metrics       TEXT,
		created_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at        TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS drills (
		drill_id          INTEGER PRIMARY KEY AUTOINCREMENT,
		leak_type         TEXT NOT NULL,
		motor_profile     TEXT NOT NULL DEFAULT '',
		weakest_category  TEXT NOT NULL DEFAULT '',
		name              TEXT NOT NULL,
		instruction       TEXT NOT NULL,
		priority          INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_drills_lookup
		ON drills(leak_type, motor_profile, weakest_category);
`
