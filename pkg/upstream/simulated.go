package upstream

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
)

// Simulated is a local stand-in for the real data sources, used when no
// upstream address is configured. The corpus it serves is fixed at
// construction so repeated queries see an unchanged view.
type Simulated struct {
	mu       sync.Mutex
	rng      *rand.Rand
	logs     []models.LogEntry
	alerts   []models.Alert
	activity []models.Activity
}

// NewSimulated builds a simulated source set. The seed fixes the sample
// stream, which keeps tests reproducible.
func NewSimulated(seed int64) *Simulated {
	now := time.Now()

	s := &Simulated{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // simulated data, not crypto
	}

	s.logs = buildLogCorpus(now)
	s.alerts = buildAlerts(now)
	s.activity = buildActivity(now)

	return s
}

// SimulatedSources returns a Sources bundle backed by one Simulated instance.
func SimulatedSources(seed int64) Sources {
	s := NewSimulated(seed)

	return Sources{Metrics: s, Logs: s, Alerts: s, Activity: s}
}

func (s *Simulated) Sample(_ context.Context) (*models.MetricsSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &models.MetricsSnapshot{
		CPUPercent:    s.rng.Float64() * 100,
		MemoryPercent: s.rng.Float64() * 100,
		DiskPercent:   s.rng.Float64() * 100,
		NetworkMBs:    s.rng.Float64() * 50,
		Timestamp:     time.Now(),
	}, nil
}

func (s *Simulated) FetchLogs(_ context.Context, since time.Time) ([]models.LogEntry, error) {
	var out []models.LogEntry

	for _, e := range s.logs {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}

	return out, nil
}

func (s *Simulated) FetchAlerts(_ context.Context) ([]models.Alert, error) {
	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)

	return out, nil
}

func (s *Simulated) FetchActivity(_ context.Context) ([]models.Activity, error) {
	out := make([]models.Activity, len(s.activity))
	copy(out, s.activity)

	return out, nil
}

func buildLogCorpus(now time.Time) []models.LogEntry {
	seed := []struct {
		age     time.Duration
		level   models.LogLevel
		service string
		message string
		source  string
	}{
		{2 * time.Minute, models.LevelInfo, "api", "User authentication successful for user@example.com", "auth-service"},
		{3 * time.Minute, models.LevelWarning, "database", "Connection pool nearly exhausted (95% utilization)", "db-pool-manager"},
		{5 * time.Minute, models.LevelError, "frontend", "Failed to load user preferences: timeout after 5000ms", "preferences-service"},
		{8 * time.Minute, models.LevelInfo, "api", "Cache invalidation completed for user sessions", "cache-manager"},
		{12 * time.Minute, models.LevelInfo, "database", "Scheduled backup started for production database", "backup-service"},
		{20 * time.Minute, models.LevelWarning, "api", "Rate limit exceeded for IP 192.168.1.100", "rate-limiter"},
		{40 * time.Minute, models.LevelError, "database", "Query timeout on table user_sessions after 30s", "query-executor"},
		{55 * time.Minute, models.LevelInfo, "frontend", "Static assets cache refreshed successfully", "asset-manager"},
		{2 * time.Hour, models.LevelDebug, "api", "Request trace sampled for /v1/reports", "tracing"},
		{6 * time.Hour, models.LevelError, "api", "Upstream call failed: connection timeout", "gateway"},
		{18 * time.Hour, models.LevelWarning, "frontend", "Slow render detected on dashboard view", "perf-monitor"},
		{3 * 24 * time.Hour, models.LevelInfo, "database", "Vacuum completed in 42s", "maintenance"},
		{10 * 24 * time.Hour, models.LevelError, "database", "Replica lag exceeded threshold", "replication"},
		{25 * 24 * time.Hour, models.LevelInfo, "api", "Deployed build 2041 to production", "deployer"},
	}

	entries := make([]models.LogEntry, 0, len(seed))

	for i, e := range seed {
		entries = append(entries, models.LogEntry{
			ID:        fmt.Sprintf("log-%03d", i+1),
			Timestamp: now.Add(-e.age),
			Level:     e.level,
			Service:   e.service,
			Message:   e.message,
			Source:    e.source,
		})
	}

	return entries
}

func buildAlerts(now time.Time) []models.Alert {
	return []models.Alert{
		{
			ID:          "alert-1",
			Title:       "High CPU Usage",
			Description: "CPU usage has exceeded 80% for the last 10 minutes on server-01",
			Severity:    models.SeverityWarning,
			Service:     "server-01",
			CreatedAt:   now.Add(-5 * time.Minute),
			Status:      models.AlertActive,
		},
		{
			ID:          "alert-2",
			Title:       "Database Connection Failed",
			Description: "Unable to establish connection to primary database",
			Severity:    models.SeverityCritical,
			Service:     "database",
			CreatedAt:   now.Add(-10 * time.Minute),
			Status:      models.AlertActive,
		},
		{
			ID:          "alert-3",
			Title:       "Disk Space Low",
			Description: "Available disk space is below 15% on /var/log partition",
			Severity:    models.SeverityWarning,
			Service:     "server-02",
			CreatedAt:   now.Add(-15 * time.Minute),
			Status:      models.AlertActive,
		},
		{
			ID:          "alert-4",
			Title:       "Certificate Renewal",
			Description: "TLS certificate for api.example.com was renewed",
			Severity:    models.SeverityInfo,
			Service:     "api",
			CreatedAt:   now.Add(-2 * time.Hour),
			Status:      models.AlertResolved,
		},
	}
}

func buildActivity(now time.Time) []models.Activity {
	return []models.Activity{
		{ID: "act-1", Type: models.SeverityInfo, Message: "System backup completed successfully", Timestamp: now.Add(-2 * time.Minute)},
		{ID: "act-2", Type: models.SeverityWarning, Message: "High memory usage detected on server-01", Timestamp: now.Add(-15 * time.Minute)},
		{ID: "act-3", Type: models.SeverityInfo, Message: "New user registered: john.doe@example.com", Timestamp: now.Add(-time.Hour)},
		{ID: "act-4", Type: models.SeverityCritical, Message: "Database connection timeout", Timestamp: now.Add(-2 * time.Hour)},
	}
}
