// Package export pkg/export/scheduler.go implements the export job
// scheduler: submission creates a durable pending job; a bounded worker
// pool drives each job through its state machine independently of the
// request path.
package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opsdash/opsdash/pkg/db"
	"github.com/opsdash/opsdash/pkg/logs"
	"github.com/opsdash/opsdash/pkg/metrics"
	"github.com/opsdash/opsdash/pkg/models"
)

const (
	queueDepth     = 256
	requeueEvery   = 30 * time.Second
	processTimeout = 2 * time.Minute
)

// Scheduler owns export job records and their transitions. At most one
// worker owns a given job: claims go through a guarded pending->processing
// update in the store, so a second worker simply loses the claim.
type Scheduler struct {
	store       db.Service
	engine      *logs.Engine
	recorder    *metrics.Recorder
	artifactDir string
	workers     int

	queue  chan string
	wg     sync.WaitGroup
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
}

// NewScheduler creates a scheduler writing artifacts under artifactDir.
func NewScheduler(store db.Service, engine *logs.Engine, recorder *metrics.Recorder, artifactDir string, workers int) *Scheduler {
	return &Scheduler{
		store:       store,
		engine:      engine,
		recorder:    recorder,
		artifactDir: artifactDir,
		workers:     workers,
		queue:       make(chan string, queueDepth),
	}
}

// Submit validates the request, creates a pending job and returns it
// immediately. Creation is O(1) and never blocks on processing; when the
// queue is saturated the job stays pending until the requeue scan finds it.
func (s *Scheduler) Submit(ctx context.Context, kind models.ExportKind, format models.ExportFormat, params models.ExportParams) (*models.ExportJob, error) {
	if kind != models.ExportMetrics && kind != models.ExportLogs {
		return nil, fmt.Errorf("%w: %w: %s", models.ErrInvalidFilter, errUnknownKind, kind)
	}

	if format != models.FormatCSV && format != models.FormatPDF {
		return nil, fmt.Errorf("%w: %w: %s", models.ErrInvalidFilter, errUnknownFormat, format)
	}

	// Logs exports reuse the query filter; reject bad parameters at the
	// door instead of failing the job later.
	if kind == models.ExportLogs {
		if err := (&logs.Filter{
			TimeRange:  logs.TimeRange(params.TimeRange),
			Level:      models.LogLevel(params.Level),
			Service:    params.Service,
			SearchTerm: params.Search,
		}).Validate(); err != nil {
			return nil, err
		}
	}

	job := &models.ExportJob{
		ID:        uuid.NewString(),
		Kind:      kind,
		Format:    format,
		Status:    models.ExportPending,
		Params:    params,
		CreatedAt: time.Now(),
	}

	if err := s.store.CreateExportJob(ctx, job); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	s.enqueue(job.ID)

	return job, nil
}

// Status returns the current job record.
func (s *Scheduler) Status(ctx context.Context, id string) (*models.ExportJob, error) {
	job, err := s.store.GetExportJob(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return nil, fmt.Errorf("%w: export job %s", models.ErrNotFound, id)
		}

		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	return job, nil
}

// List returns all jobs, newest first.
func (s *Scheduler) List(ctx context.Context) ([]models.ExportJob, error) {
	jobs, err := s.store.ListExportJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInternal, err)
	}

	return jobs, nil
}

// Download resolves a completed job to its artifact. Non-completed jobs
// fail with ErrNotReady; unknown jobs with ErrNotFound. The returned path
// is stable for the life of the job record.
func (s *Scheduler) Download(ctx context.Context, id string) (path, mimeType string, err error) {
	job, err := s.Status(ctx, id)
	if err != nil {
		return "", "", err
	}

	if job.Status != models.ExportCompleted {
		return "", "", fmt.Errorf("%w: export job %s is %s", models.ErrNotReady, id, job.Status)
	}

	path = s.artifactPath(job)

	if _, err := os.Stat(path); err != nil {
		return "", "", fmt.Errorf("%w: %w", models.ErrInternal, errArtifactMissing)
	}

	return path, contentType(job.Format), nil
}

// Start launches the worker pool and the requeue scan. Jobs found in
// processing state are leftovers from an interrupted run; their artifacts
// cannot be trusted, so they are failed rather than resumed.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if err := os.MkdirAll(s.artifactDir, 0o750); err != nil {
		return fmt.Errorf("failed to create artifact dir: %w", err)
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.started = true

	s.failInterrupted(ctx)
	s.requeuePending(ctx)

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)

		go s.worker(ctx)
	}

	s.wg.Add(1)

	go s.requeueLoop(ctx)

	return nil
}

// Stop shuts down the workers, waiting up to the context deadline.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.cancel()

	done := make(chan struct{})

	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.started = false

	return nil
}

func (s *Scheduler) enqueue(id string) {
	select {
	case s.queue <- id:
	default:
		// Queue saturated; the requeue scan will pick the job up.
	}
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case id := <-s.queue:
			s.process(ctx, id)
		}
	}
}

func (s *Scheduler) requeueLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(requeueEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.requeuePending(ctx)
		}
	}
}

func (s *Scheduler) requeuePending(ctx context.Context) {
	pending, err := s.store.ListExportJobsByStatus(ctx, models.ExportPending)
	if err != nil {
		log.Printf("Failed to list pending export jobs: %v", err)
		return
	}

	for i := range pending {
		s.enqueue(pending[i].ID)
	}
}

func (s *Scheduler) failInterrupted(ctx context.Context) {
	stuck, err := s.store.ListExportJobsByStatus(ctx, models.ExportProcessing)
	if err != nil {
		log.Printf("Failed to list processing export jobs: %v", err)
		return
	}

	for i := range stuck {
		job := &stuck[i]

		s.removeArtifact(job)

		if err := s.store.FailExportJob(ctx, job.ID, "interrupted before completion", time.Now()); err != nil {
			log.Printf("Failed to fail interrupted job %s: %v", job.ID, err)
		}
	}
}

// process drives one job through processing to a terminal state.
func (s *Scheduler) process(ctx context.Context, id string) {
	// The claim is the pending->processing transition; losing it means
	// another worker owns the job (or it already ran).
	if err := s.store.ClaimExportJob(ctx, id); err != nil {
		if !errors.Is(err, db.ErrTransition) {
			log.Printf("Failed to claim export job %s: %v", id, err)
		}

		return
	}

	job, err := s.store.GetExportJob(ctx, id)
	if err != nil {
		log.Printf("Failed to load claimed job %s: %v", id, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, processTimeout)
	defer cancel()

	path := s.artifactPath(job)

	if err := s.materialize(ctx, job, path); err != nil {
		// Partial artifacts must never become downloadable.
		s.removeArtifact(job)

		if failErr := s.store.FailExportJob(ctx, id, err.Error(), time.Now()); failErr != nil {
			log.Printf("Failed to mark job %s failed: %v", id, failErr)
		}

		log.Printf("Export job %s failed: %v", id, err)

		return
	}

	ref := "/api/exports/" + id + "/download"

	if err := s.store.CompleteExportJob(ctx, id, ref, time.Now()); err != nil {
		log.Printf("Failed to complete job %s: %v", id, err)
		return
	}

	log.Printf("Export job %s completed (%s %s)", id, job.Kind, job.Format)
}

func (s *Scheduler) materialize(ctx context.Context, job *models.ExportJob, path string) error {
	var d *dataset

	switch job.Kind {
	case models.ExportLogs:
		entries, err := s.engine.Search(ctx, logs.Filter{
			TimeRange:  logs.TimeRange(job.Params.TimeRange),
			Level:      models.LogLevel(job.Params.Level),
			Service:    job.Params.Service,
			SearchTerm: job.Params.Search,
		})
		if err != nil {
			return err
		}

		d = logsDataset(entries)

	case models.ExportMetrics:
		snaps := s.recorder.History()

		// An empty history means nothing has polled yet; take one
		// sample so the export is never an empty table.
		if len(snaps) == 0 {
			snap, err := s.recorder.Sample(ctx)
			if err != nil {
				return fmt.Errorf("%w: %w", errEmptyDataset, err)
			}

			snaps = []models.MetricsSnapshot{*snap}
		}

		d = metricsDataset(snaps, &job.Params)

	default:
		return fmt.Errorf("%w: %s", errUnknownKind, job.Kind)
	}

	return render(d, job.Format, path)
}

func (s *Scheduler) artifactPath(job *models.ExportJob) string {
	return filepath.Join(s.artifactDir, job.ID+"."+string(job.Format))
}

func (s *Scheduler) removeArtifact(job *models.ExportJob) {
	path := s.artifactPath(job)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove artifact %s: %v", path, err)
	}
}
