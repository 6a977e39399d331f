// Package logs pkg/logs/query.go implements the log query engine: a pure,
// deterministic filter over an immutable corpus.
package logs

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
)

// checkEvery bounds how many entries are scanned between context checks
// so a caller timeout cancels long queries promptly.
const checkEvery = 1024

// Query restricts the corpus to entries matching every supplied predicate
// and returns them most recent first, ties broken by id ascending. The
// operation is side-effect-free: identical inputs against an unchanged
// corpus yield an identical ordered result.
func Query(ctx context.Context, corpus []models.LogEntry, filter Filter, now time.Time) ([]models.LogEntry, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	window, _ := filter.TimeRange.Duration()
	cutoff := now.Add(-window)
	term := strings.ToLower(filter.SearchTerm)

	matched := make([]models.LogEntry, 0, len(corpus)/4)

	for i, entry := range corpus {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		if matches(&entry, cutoff, now, &filter, term) {
			matched = append(matched, entry)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Timestamp.Equal(matched[j].Timestamp) {
			return matched[i].Timestamp.After(matched[j].Timestamp)
		}

		return matched[i].ID < matched[j].ID
	})

	return matched, nil
}

func matches(e *models.LogEntry, cutoff, now time.Time, f *Filter, term string) bool {
	if e.Timestamp.Before(cutoff) || e.Timestamp.After(now) {
		return false
	}

	if f.Level != "" && e.Level != f.Level {
		return false
	}

	if f.Service != "" && e.Service != f.Service {
		return false
	}

	if term != "" {
		if !strings.Contains(strings.ToLower(e.Message), term) &&
			!strings.Contains(strings.ToLower(e.Service), term) &&
			!strings.Contains(strings.ToLower(e.Source), term) {
			return false
		}
	}

	return true
}
