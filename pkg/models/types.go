// Package models pkg/models/types.go
package models

import "time"

// Role determines which operations a principal may perform.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

// Principal is an authenticated identity.
type Principal struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session is a time-bounded authorization grant identified by an opaque token.
type Session struct {
	Token       string    `json:"token"`
	PrincipalID string    `json:"principal_id"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// MetricsSnapshot is a single point-in-time utilization reading.
// Percentages are bounded to [0,100]; NetworkMBs is non-negative.
type MetricsSnapshot struct {
	CPUPercent    float64   `json:"cpu_percent"`
	MemoryPercent float64   `json:"memory_percent"`
	DiskPercent   float64   `json:"disk_percent"`
	NetworkMBs    float64   `json:"network_mbs"`
	Timestamp     time.Time `json:"timestamp"`
}

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type AlertStatus string

const (
	AlertActive   AlertStatus = "active"
	AlertResolved AlertStatus = "resolved"
)

// Alert is the view over an upstream alert record. The authoritative record
// lives in the upstream source; only the dismissal projection is local.
type Alert struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Severity    Severity    `json:"severity"`
	Service     string      `json:"service"`
	CreatedAt   time.Time   `json:"created_at"`
	Status      AlertStatus `json:"status"`
}

type LogLevel string

const (
	LevelDebug   LogLevel = "debug"
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
)

// Valid reports whether l is one of the declared log levels.
func (l LogLevel) Valid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError:
		return true
	default:
		return false
	}
}

// LogEntry is immutable once ingested; the system only filters and orders
// views over the corpus.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Service   string    `json:"service"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
}

// Activity is a single event in the dashboard activity feed.
type Activity struct {
	ID        string    `json:"id"`
	Type      Severity  `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ExportKind string

const (
	ExportMetrics ExportKind = "metrics"
	ExportLogs    ExportKind = "logs"
)

type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

type ExportStatus string

const (
	ExportPending    ExportStatus = "pending"
	ExportProcessing ExportStatus = "processing"
	ExportCompleted  ExportStatus = "completed"
	ExportFailed     ExportStatus = "failed"
)

// ExportParams carries the data selection for an export job. TimeRange uses
// the same bucket names as the log query filter. Level, Service and Search
// apply to logs exports; Metrics selects columns for metrics exports.
type ExportParams struct {
	TimeRange string   `json:"time_range"`
	Level     string   `json:"level,omitempty"`
	Service   string   `json:"service,omitempty"`
	Search    string   `json:"search,omitempty"`
	Metrics   []string `json:"metrics,omitempty"`
}

// ExportJob is owned exclusively by the export scheduler. Status transitions
// are monotonic: pending -> processing -> completed|failed. Terminal states
// are final; DownloadRef is set iff status is completed.
type ExportJob struct {
	ID          string       `json:"id"`
	Kind        ExportKind   `json:"kind"`
	Format      ExportFormat `json:"format"`
	Status      ExportStatus `json:"status"`
	Params      ExportParams `json:"params"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
	DownloadRef string       `json:"download_ref,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// Terminal reports whether the job has reached a final state.
func (j *ExportJob) Terminal() bool {
	return j.Status == ExportCompleted || j.Status == ExportFailed
}
