package metrics

import (
	"sync"

	"github.com/opsdash/opsdash/pkg/models"
)

// SnapshotBuffer is a fixed-size ring of utilization snapshots backing the
// dashboard history chart. Writes overwrite the oldest point once full.
type SnapshotBuffer struct {
	mu     sync.RWMutex
	points []models.MetricsSnapshot
	pos    int
	filled bool
}

// NewBuffer creates a SnapshotStore holding at most size points.
func NewBuffer(size int) SnapshotStore {
	return &SnapshotBuffer{
		points: make([]models.MetricsSnapshot, size),
	}
}

// Add records a snapshot, evicting the oldest point when the ring is full.
func (b *SnapshotBuffer) Add(snap models.MetricsSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.points[b.pos] = snap
	b.pos = (b.pos + 1) % len(b.points)

	if b.pos == 0 {
		b.filled = true
	}
}

// GetPoints returns the recorded snapshots, most recent first. The slice is
// a copy and safe for callers to hold.
func (b *SnapshotBuffer) GetPoints() []models.MetricsSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n := b.pos
	if b.filled {
		n = len(b.points)
	}

	out := make([]models.MetricsSnapshot, 0, n)

	for i := 0; i < n; i++ {
		idx := (b.pos - 1 - i + len(b.points)) % len(b.points)
		out = append(out, b.points[idx])
	}

	return out
}

// GetLastPoint returns the most recent snapshot, or nil when empty.
func (b *SnapshotBuffer) GetLastPoint() *models.MetricsSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.pos == 0 && !b.filled {
		return nil
	}

	idx := (b.pos - 1 + len(b.points)) % len(b.points)
	snap := b.points[idx]

	return &snap
}
