package metrics

import (
	"context"

	"github.com/opsdash/opsdash/pkg/models"
	"github.com/opsdash/opsdash/pkg/upstream"
)

// Recorder samples the upstream metrics source and keeps the result in the
// history buffer. Sampling is a side-effect-free read against the upstream;
// only the local history is appended to, so retries after a caller timeout
// are safe.
type Recorder struct {
	source  upstream.MetricsSource
	history SnapshotStore
}

// NewRecorder creates a recorder over the given source with a history of
// historySize points.
func NewRecorder(source upstream.MetricsSource, historySize int) *Recorder {
	return &Recorder{
		source:  source,
		history: NewBuffer(historySize),
	}
}

// Sample fetches a validated snapshot and records it in the history.
func (r *Recorder) Sample(ctx context.Context) (*models.MetricsSnapshot, error) {
	snap, err := r.source.Sample(ctx)
	if err != nil {
		return nil, err
	}

	r.history.Add(*snap)

	return snap, nil
}

// History returns the recorded snapshots, most recent first.
func (r *Recorder) History() []models.MetricsSnapshot {
	return r.history.GetPoints()
}
