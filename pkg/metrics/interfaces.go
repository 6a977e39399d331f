package metrics

import (
	"github.com/opsdash/opsdash/pkg/models"
)

// SnapshotStore holds the recent snapshot history for the dashboard chart.
type SnapshotStore interface {
	Add(snap models.MetricsSnapshot)
	GetPoints() []models.MetricsSnapshot
	GetLastPoint() *models.MetricsSnapshot
}
