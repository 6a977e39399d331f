// Package db pkg/db/interfaces.go
package db

import (
	"context"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
)

//go:generate mockgen -destination=mock_db.go -package=db github.com/opsdash/opsdash/pkg/db Service

// Service represents all database operations.
type Service interface {
	// Principal operations.

	CreatePrincipal(ctx context.Context, p *models.Principal, passwordHash string) error
	GetPrincipal(ctx context.Context, id string) (*models.Principal, error)
	GetPrincipalByEmail(ctx context.Context, email string) (*models.Principal, string, error)

	// Session operations.

	CreateSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error

	// Export job operations. ClaimExportJob, CompleteExportJob and
	// FailExportJob are guarded transitions: they return ErrTransition
	// when the job is not in the expected prior state, which is what
	// keeps the state machine monotonic under concurrent workers.

	CreateExportJob(ctx context.Context, job *models.ExportJob) error
	GetExportJob(ctx context.Context, id string) (*models.ExportJob, error)
	ListExportJobs(ctx context.Context) ([]models.ExportJob, error)
	ListExportJobsByStatus(ctx context.Context, status models.ExportStatus) ([]models.ExportJob, error)
	ClaimExportJob(ctx context.Context, id string) error
	CompleteExportJob(ctx context.Context, id, downloadRef string, completedAt time.Time) error
	FailExportJob(ctx context.Context, id, cause string, completedAt time.Time) error

	// Alert dismissal operations.

	DismissAlert(ctx context.Context, alertID string, dismissedAt time.Time) error
	IsAlertDismissed(ctx context.Context, alertID string) (bool, error)
	ListDismissedAlerts(ctx context.Context) (map[string]bool, error)

	// Maintenance.

	CleanOldData(retentionPeriod time.Duration) error
	Close() error
}
