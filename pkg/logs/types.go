// Package logs pkg/logs/types.go
package logs

import (
	"fmt"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
)

// TimeRange is an enumerated lookback bucket, resolved against query time.
type TimeRange string

const (
	RangeHour  TimeRange = "1h"
	RangeDay   TimeRange = "24h"
	RangeWeek  TimeRange = "7d"
	RangeMonth TimeRange = "30d"
)

var rangeDurations = map[TimeRange]time.Duration{
	RangeHour:  time.Hour,
	RangeDay:   24 * time.Hour,
	RangeWeek:  7 * 24 * time.Hour,
	RangeMonth: 30 * 24 * time.Hour,
}

// Duration returns the lookback window for the bucket.
func (r TimeRange) Duration() (time.Duration, bool) {
	d, ok := rangeDurations[r]

	return d, ok
}

// Filter selects entries from the corpus. An unset optional field means
// "match all" for that dimension.
type Filter struct {
	TimeRange  TimeRange       `json:"time_range"`
	Level      models.LogLevel `json:"level,omitempty"`
	Service    string          `json:"service,omitempty"`
	SearchTerm string          `json:"search_term,omitempty"`
}

// Validate rejects filters whose values fall outside their declared
// domains. The returned error wraps models.ErrInvalidFilter.
func (f *Filter) Validate() error {
	if _, ok := f.TimeRange.Duration(); !ok {
		return fmt.Errorf("%w: unknown time range %q", models.ErrInvalidFilter, f.TimeRange)
	}

	if f.Level != "" && !f.Level.Valid() {
		return fmt.Errorf("%w: unknown level %q", models.ErrInvalidFilter, f.Level)
	}

	return nil
}
