// Package errors pkg/db/errors.go provides errors for the db package.

package db

import "errors"

var (
	// ErrNoRows maps sql.ErrNoRows onto a store-level sentinel so callers
	// do not depend on database/sql.
	ErrNoRows = errors.New("record not found")

	// ErrDuplicate is returned when a uniqueness constraint rejects an
	// insert (duplicate email, duplicate dismissal).
	ErrDuplicate = errors.New("record already exists")

	// ErrTransition is returned when a guarded status update matched no
	// row, i.e. the job was not in the expected prior state.
	ErrTransition = errors.New("invalid status transition")

	// Operation errors.

	errFailedToClean     = errors.New("failed to clean")
	errFailedToBeginTx   = errors.New("failed to begin transaction")
	errFailedToScan      = errors.New("failed to scan")
	errFailedToQuery     = errors.New("failed to query")
	errFailedToInsert    = errors.New("failed to insert")
	errFailedToDelete    = errors.New("failed to delete")
	errFailedToInit      = errors.New("failed to initialize schema")
	errFailedToEnableWAL = errors.New("failed to enable WAL mode")
	errFailedOpenDB      = errors.New("failed to open database")
)
