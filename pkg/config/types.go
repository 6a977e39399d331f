package config

import (
	"encoding/json"
	"fmt"
	"time"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// ServerConfig is the configuration for the dashboard backend service.
type ServerConfig struct {
	ListenAddr     string   `json:"listen_addr"`      // e.g., :8081
	DBPath         string   `json:"db_path"`          // e.g., /var/lib/opsdash/opsdash.db
	ArtifactDir    string   `json:"artifact_dir"`     // where export artifacts are written
	UpstreamAddr   string   `json:"upstream_addr"`    // base address of the metrics/log/alert sources; empty selects the simulated providers
	SessionTTL     Duration `json:"session_ttl"`      // lifetime of issued sessions
	ExportWorkers  int      `json:"export_workers"`   // bound on concurrently materializing jobs
	StreamInterval Duration `json:"stream_interval"`  // websocket snapshot push interval
	CleanupAge     Duration `json:"cleanup_age"`      // retention for expired sessions and dismissals
	MetricsHistory int      `json:"metrics_history"`  // snapshot ring buffer size
	LoginBurst     int      `json:"login_burst"`      // rate limit burst for auth endpoints
	LoginPerMinute int      `json:"login_per_minute"` // sustained auth attempts per minute
}

const (
	defaultSessionTTL     = 12 * time.Hour
	defaultStreamInterval = 30 * time.Second
	defaultCleanupAge     = 30 * 24 * time.Hour
	defaultExportWorkers  = 2
	defaultMetricsHistory = 120
	defaultLoginBurst     = 5
	defaultLoginPerMin    = 10
)

// Validate fills defaults and rejects unusable settings.
func (c *ServerConfig) Validate() error {
	if c.ListenAddr == "" {
		return errMissingListenAddr
	}

	if c.DBPath == "" {
		return errMissingDBPath
	}

	if c.ArtifactDir == "" {
		return errMissingArtifactDir
	}

	if c.SessionTTL <= 0 {
		c.SessionTTL = Duration(defaultSessionTTL)
	}

	if c.StreamInterval <= 0 {
		c.StreamInterval = Duration(defaultStreamInterval)
	}

	if c.CleanupAge <= 0 {
		c.CleanupAge = Duration(defaultCleanupAge)
	}

	if c.ExportWorkers <= 0 {
		c.ExportWorkers = defaultExportWorkers
	}

	if c.MetricsHistory <= 0 {
		c.MetricsHistory = defaultMetricsHistory
	}

	if c.LoginBurst <= 0 {
		c.LoginBurst = defaultLoginBurst
	}

	if c.LoginPerMinute <= 0 {
		c.LoginPerMinute = defaultLoginPerMin
	}

	return nil
}
