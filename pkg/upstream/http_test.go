package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdash/opsdash/pkg/models"
)

func upstreamStub(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPClient(srv.URL)
}

func TestSampleDecodesSnapshot(t *testing.T) {
	c := upstreamStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/metrics", r.URL.Path)

		_ = json.NewEncoder(w).Encode(models.MetricsSnapshot{
			CPUPercent:    42.5,
			MemoryPercent: 61.2,
			DiskPercent:   30,
			NetworkMBs:    4.4,
		})
	})

	snap, err := c.Sample(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 42.5, snap.CPUPercent, 0.001)
	assert.False(t, snap.Timestamp.IsZero(), "zero timestamp must be filled locally")
}

func TestSampleRejectsOutOfRangeSnapshot(t *testing.T) {
	c := upstreamStub(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.MetricsSnapshot{
			CPUPercent:    142.5,
			MemoryPercent: 61.2,
		})
	})

	_, err := c.Sample(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestGetJSONNonOKStatus(t *testing.T) {
	c := upstreamStub(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchAlerts(context.Background())
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestGetJSONDecodeFailure(t *testing.T) {
	c := upstreamStub(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	_, err := c.FetchActivity(context.Background())
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestFetchLogsPassesSinceParameter(t *testing.T) {
	since := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	c := upstreamStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logs", r.URL.Path)
		assert.Equal(t, since.Format(time.RFC3339), r.URL.Query().Get("since"))

		_ = json.NewEncoder(w).Encode([]models.LogEntry{
			{ID: "log-001", Level: models.LevelInfo, Service: "api", Message: "ok"},
		})
	})

	entries, err := c.FetchLogs(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "log-001", entries[0].ID)
}

func TestFetchLogsConnectionRefused(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1")

	_, err := c.FetchLogs(context.Background(), time.Now())
	assert.ErrorIs(t, err, models.ErrUpstream)
}

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		snap    *models.MetricsSnapshot
		wantErr bool
	}{
		{name: "nil", snap: nil, wantErr: true},
		{name: "valid", snap: &models.MetricsSnapshot{CPUPercent: 50, MemoryPercent: 50, DiskPercent: 50, NetworkMBs: 10}},
		{name: "boundary low", snap: &models.MetricsSnapshot{}},
		{name: "boundary high", snap: &models.MetricsSnapshot{CPUPercent: 100, MemoryPercent: 100, DiskPercent: 100}},
		{name: "cpu over", snap: &models.MetricsSnapshot{CPUPercent: 100.01}, wantErr: true},
		{name: "memory negative", snap: &models.MetricsSnapshot{MemoryPercent: -1}, wantErr: true},
		{name: "disk over", snap: &models.MetricsSnapshot{DiskPercent: 101}, wantErr: true},
		{name: "network negative", snap: &models.MetricsSnapshot{NetworkMBs: -0.1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshot(tt.snap)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
