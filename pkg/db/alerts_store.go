package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"
)

// DismissAlert records a local suppression for an alert id. Dismissing an
// already-dismissed id returns ErrDuplicate so the caller can report the
// stale view instead of silently absorbing it.
func (db *DB) DismissAlert(ctx context.Context, alertID string, dismissedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	const query = `
        INSERT INTO alert_dismissals (alert_id, dismissed_at)
        VALUES (?, ?)
    `

	_, err := db.ExecContext(ctx, query, alertID, dismissedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: dismissal %s", ErrDuplicate, alertID)
		}

		return fmt.Errorf("%w dismissal: %w", errFailedToInsert, err)
	}

	return nil
}

func (db *DB) IsAlertDismissed(ctx context.Context, alertID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	var id string

	err := db.QueryRowContext(ctx,
		"SELECT alert_id FROM alert_dismissals WHERE alert_id = ?", alertID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("%w dismissal: %w", errFailedToQuery, err)
	}

	return true, nil
}

func (db *DB) ListDismissedAlerts(ctx context.Context) (map[string]bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, "SELECT alert_id FROM alert_dismissals") //nolint:rowserrcheck // rows.Close() is deferred
	if err != nil {
		return nil, fmt.Errorf("%w dismissals: %w", errFailedToQuery, err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}(rows)

	dismissed := make(map[string]bool)

	for rows.Next() {
		var id string

		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w dismissal row: %w", errFailedToScan, err)
		}

		dismissed[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w dismissals: %w", errFailedToQuery, err)
	}

	return dismissed, nil
}
