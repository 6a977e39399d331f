package db

import (
	"fmt"
	"log"
	"time"
)

// CleanOldData prunes expired sessions and aged-out alert dismissals.
// Export jobs are kept; their download refs stay valid for the life of
// the record.
func (db *DB) CleanOldData(retentionPeriod time.Duration) (err error) {
	cutoff := time.Now().Add(-retentionPeriod)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("failed to rollback: %v", rbErr)
			}
			return
		}
		err = tx.Commit()
	}()

	// Expired sessions are dead weight regardless of retention.
	if _, err = tx.Exec(
		"DELETE FROM sessions WHERE expires_at < ?",
		time.Now(),
	); err != nil {
		return fmt.Errorf("%w sessions: %w", errFailedToClean, err)
	}

	// Old dismissals: the upstream source has long since stopped emitting
	// these ids, so dropping them bounds table growth.
	if _, err = tx.Exec(
		"DELETE FROM alert_dismissals WHERE dismissed_at < ?",
		cutoff,
	); err != nil {
		return fmt.Errorf("%w dismissals: %w", errFailedToClean, err)
	}

	return err
}
