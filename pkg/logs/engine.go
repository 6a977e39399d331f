package logs

import (
	"context"
	"time"

	"github.com/opsdash/opsdash/pkg/models"
	"github.com/opsdash/opsdash/pkg/upstream"
)

// Engine binds the pure query to a corpus source. The source is only asked
// for entries inside the filter window, so large upstream corpora are not
// fetched whole.
type Engine struct {
	source upstream.LogSource
	now    func() time.Time
}

// NewEngine creates a query engine over the given log source.
func NewEngine(source upstream.LogSource) *Engine {
	return &Engine{
		source: source,
		now:    time.Now,
	}
}

// Search validates the filter, fetches the windowed corpus and runs Query
// over it.
func (e *Engine) Search(ctx context.Context, filter Filter) ([]models.LogEntry, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	now := e.now()
	window, _ := filter.TimeRange.Duration()

	corpus, err := e.source.FetchLogs(ctx, now.Add(-window))
	if err != nil {
		return nil, err
	}

	return Query(ctx, corpus, filter, now)
}
