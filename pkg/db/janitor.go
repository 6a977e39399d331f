package db

import (
	"context"
	"log"
	"sync"
	"time"
)

// Janitor periodically prunes old data. It is a cancellable recurring
// task: Stop halts the ticker deterministically, no timer survives the
// process context.
type Janitor struct {
	store    Service
	interval time.Duration
	maxAge   time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewJanitor creates a janitor running CleanOldData(maxAge) every interval.
func NewJanitor(store Service, interval, maxAge time.Duration) *Janitor {
	return &Janitor{
		store:    store,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (j *Janitor) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel != nil {
		return nil
	}

	ctx, j.cancel = context.WithCancel(ctx)
	j.done = make(chan struct{})

	go j.run(ctx)

	return nil
}

func (j *Janitor) Stop(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancel == nil {
		return nil
	}

	j.cancel()

	select {
	case <-j.done:
	case <-ctx.Done():
		return ctx.Err()
	}

	j.cancel = nil

	return nil
}

func (j *Janitor) run(ctx context.Context) {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := j.store.CleanOldData(j.maxAge); err != nil {
				log.Printf("Cleanup failed: %v", err)
			}
		}
	}
}
