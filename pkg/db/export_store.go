package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
)

func (db *DB) CreateExportJob(ctx context.Context, job *models.ExportJob) error {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	params, err := json.Marshal(job.Params)
	if err != nil {
		return fmt.Errorf("%w job params: %w", errFailedToInsert, err)
	}

	const query = `
        INSERT INTO export_jobs (id, kind, format, status, params, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	_, err = db.ExecContext(ctx, query,
		job.ID, string(job.Kind), string(job.Format), string(job.Status), string(params), job.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w export job: %w", errFailedToInsert, err)
	}

	return nil
}

func (db *DB) GetExportJob(ctx context.Context, id string) (*models.ExportJob, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	const query = `
        SELECT id, kind, format, status, params, download_ref, error, created_at, completed_at
        FROM export_jobs
        WHERE id = ?
    `

	job, err := scanExportJob(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: export job %s", ErrNoRows, id)
	}

	if err != nil {
		return nil, err
	}

	return job, nil
}

func (db *DB) ListExportJobs(ctx context.Context) ([]models.ExportJob, error) {
	const query = `
        SELECT id, kind, format, status, params, download_ref, error, created_at, completed_at
        FROM export_jobs
        ORDER BY created_at DESC, id ASC
    `

	return db.queryExportJobs(ctx, query)
}

func (db *DB) ListExportJobsByStatus(ctx context.Context, status models.ExportStatus) ([]models.ExportJob, error) {
	const query = `
        SELECT id, kind, format, status, params, download_ref, error, created_at, completed_at
        FROM export_jobs
        WHERE status = ?
        ORDER BY created_at ASC
    `

	return db.queryExportJobs(ctx, query, string(status))
}

// ClaimExportJob moves a job from pending to processing. The WHERE guard on
// the prior status makes the claim atomic: of two racing workers exactly one
// sees a row affected, the other gets ErrTransition and skips the job.
func (db *DB) ClaimExportJob(ctx context.Context, id string) error {
	return db.guardedTransition(ctx, id,
		"UPDATE export_jobs SET status = ? WHERE id = ? AND status = ?",
		string(models.ExportProcessing), id, string(models.ExportPending))
}

func (db *DB) CompleteExportJob(ctx context.Context, id, downloadRef string, completedAt time.Time) error {
	return db.guardedTransition(ctx, id,
		"UPDATE export_jobs SET status = ?, download_ref = ?, completed_at = ? WHERE id = ? AND status = ?",
		string(models.ExportCompleted), downloadRef, completedAt, id, string(models.ExportProcessing))
}

func (db *DB) FailExportJob(ctx context.Context, id, cause string, completedAt time.Time) error {
	return db.guardedTransition(ctx, id,
		"UPDATE export_jobs SET status = ?, error = ?, completed_at = ? WHERE id = ? AND status = ?",
		string(models.ExportFailed), cause, completedAt, id, string(models.ExportProcessing))
}

func (db *DB) guardedTransition(ctx context.Context, id, query string, args ...interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w export job: %w", errFailedToInsert, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: export job %s", ErrTransition, id)
	}

	return nil
}

func (db *DB) queryExportJobs(ctx context.Context, query string, args ...interface{}) ([]models.ExportJob, error) {
	ctx, cancel := context.WithTimeout(ctx, dbOperationTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctx, query, args...) //nolint:rowserrcheck // rows.Close() is deferred
	if err != nil {
		return nil, fmt.Errorf("%w export jobs: %w", errFailedToQuery, err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}(rows)

	var jobs []models.ExportJob

	for rows.Next() {
		job, err := scanExportJob(rows)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, *job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w export jobs: %w", errFailedToQuery, err)
	}

	return jobs, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExportJob(row rowScanner) (*models.ExportJob, error) {
	var (
		job         models.ExportJob
		params      string
		completedAt sql.NullTime
	)

	err := row.Scan(&job.ID, &job.Kind, &job.Format, &job.Status,
		&params, &job.DownloadRef, &job.Error, &job.CreatedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if err != nil {
		return nil, fmt.Errorf("%w export job: %w", errFailedToScan, err)
	}

	if err := json.Unmarshal([]byte(params), &job.Params); err != nil {
		return nil, fmt.Errorf("%w job params: %w", errFailedToScan, err)
	}

	if completedAt.Valid {
		t := completedAt.Time
		job.CompletedAt = &t
	}

	return &job, nil
}
