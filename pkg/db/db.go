// Package db pkg/db/db.go provides SQLite persistence for principals,
// sessions, export jobs and alert dismissals.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const (
	dbOperationTimeout = 5 * time.Second

	// SQL statements for database initialization.
	createTablesSQL = `
	-- Registered identities
	CREATE TABLE IF NOT EXISTS principals (
		id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	-- Issued sessions
	CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		principal_id TEXT NOT NULL,
		issued_at TIMESTAMP NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		FOREIGN KEY (principal_id) REFERENCES principals(id) ON DELETE CASCADE
	);

	-- Export jobs and their state machine
	CREATE TABLE IF NOT EXISTS export_jobs (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		format TEXT NOT NULL,
		status TEXT NOT NULL,
		params TEXT NOT NULL,
		download_ref TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		completed_at TIMESTAMP
	);

	-- Locally suppressed alert ids
	CREATE TABLE IF NOT EXISTS alert_dismissals (
		alert_id TEXT PRIMARY KEY,
		dismissed_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_expires
		ON sessions(expires_at);
	CREATE INDEX IF NOT EXISTS idx_export_jobs_status
		ON export_jobs(status);
	CREATE INDEX IF NOT EXISTS idx_export_jobs_created
		ON export_jobs(created_at);

	PRAGMA foreign_keys=ON;
	`
)

// DB represents the database connection and operations.
type DB struct {
	*sql.DB
}

// New creates a new database connection and initializes the schema.
func New(dbPath string) (Service, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedOpenDB, err)
	}

	// Enable WAL mode for better concurrent access
	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("%w: %w", errFailedToInit, err)
	}

	return db, nil
}

// initSchema creates the database tables if they don't exist.
func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}
