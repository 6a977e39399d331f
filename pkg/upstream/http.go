package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
)

const clientTimeout = 10 * time.Second

// HTTPClient talks to the upstream data sources through a single configured
// base address. It implements all four source interfaces.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the given base address, e.g.
// "http://upstream:3001/api".
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// HTTPSources returns a Sources bundle backed by a single HTTPClient.
func HTTPSources(baseURL string) Sources {
	c := NewHTTPClient(baseURL)

	return Sources{Metrics: c, Logs: c, Alerts: c, Activity: c}
}

func (c *HTTPClient) Sample(ctx context.Context) (*models.MetricsSnapshot, error) {
	var snap models.MetricsSnapshot

	if err := c.getJSON(ctx, "/metrics", nil, &snap); err != nil {
		return nil, err
	}

	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now()
	}

	// No silent zero-fill: a snapshot outside its declared ranges fails
	// as a whole.
	if err := ValidateSnapshot(&snap); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}

	return &snap, nil
}

func (c *HTTPClient) FetchLogs(ctx context.Context, since time.Time) ([]models.LogEntry, error) {
	params := url.Values{}
	params.Set("since", since.UTC().Format(time.RFC3339))

	var entries []models.LogEntry

	if err := c.getJSON(ctx, "/logs", params, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (c *HTTPClient) FetchAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert

	if err := c.getJSON(ctx, "/alerts", nil, &alerts); err != nil {
		return nil, err
	}

	return alerts, nil
}

func (c *HTTPClient) FetchActivity(ctx context.Context) ([]models.Activity, error) {
	var events []models.Activity

	if err := c.getJSON(ctx, "/activity", nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, params url.Values, dst interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrUpstream, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", models.ErrUpstream, errRequest, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %w: %d", models.ErrUpstream, errStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w: %w", models.ErrUpstream, errDecode, err)
	}

	return nil
}

// ValidateSnapshot checks the range bounds of every snapshot field:
// percentages in [0,100], throughput >= 0.
func ValidateSnapshot(s *models.MetricsSnapshot) error {
	if s == nil {
		return errMissingSnapshot
	}

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"cpu_percent", s.CPUPercent},
		{"memory_percent", s.MemoryPercent},
		{"disk_percent", s.DiskPercent},
	} {
		if v.value < 0 || v.value > 100 {
			return fmt.Errorf("%w: %s=%v", errOutOfRange, v.name, v.value)
		}
	}

	if s.NetworkMBs < 0 {
		return fmt.Errorf("%w: network_mbs=%v", errOutOfRange, s.NetworkMBs)
	}

	return nil
}
