// Package worker defines worker contracts for asynchronous observation
// ingestion and assessment refresh.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/abmccull/talentscout/internal/domain/model"
	"github.com/abmccull/talentscout/internal/domain/report"
	"github.com/abmccull/talentscout/pkg/logger"
	"github.com/abmccull/talentscout/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 4 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Observation abstracts what workers read off the queue.
type Observation = model.Observation

// Assessor merges a player's accumulated observations into attribute
// assessments.
type Assessor interface {
	Assess(ctx context.Context, observations []model.Observation) ([]report.AttributeAssessment, error)
}

// Store receives ingested observations and refreshed assessments.
type Store interface {
	// AppendObservation records the observation and returns the player's
	// full observation history including it.
	AppendObservation(ctx context.Context, obs model.Observation) ([]model.Observation, error)

	// SetAssessments replaces the player's merged assessment state.
	SetAssessments(ctx context.Context, playerID string, assessments []report.AttributeAssessment) error
}

// Queue defines how workers receive observations.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Observation
}

// Worker processes observations and refreshes assessment state.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker. It will process any remaining
	// observations before stopping.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing observations.
type InMemoryWorker struct {
	queue    Queue
	assessor Assessor
	store    Store
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, assessor Assessor, store Store, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    queue,
		assessor: assessor,
		store:    store,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer func() {
		close(w.done)
	}()

	obsChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case obs, ok := <-obsChan:
			if !ok {
				return
			}
			if err := w.processObservation(ctx, obs); err != nil {
				w.logger.Error(ctx, "error processing observation", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processObservation records one observation and refreshes the player's
// merged assessments from the full history.
func (w *InMemoryWorker) processObservation(ctx context.Context, obs Observation) error {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordWorkerProcessingLatency(float64(latency))
	}()

	history, err := w.store.AppendObservation(ctx, obs)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store_append_error")
		w.logger.Error(ctx, "failed to record observation",
			logger.String("observationID", obs.ID),
			logger.Error(err),
		)
		return fmt.Errorf("failed to record observation %s: %w", obs.ID, err)
	}

	assessStart := time.Now()
	assessments, err := w.assessor.Assess(ctx, history)
	metrics.RecordAssessmentLatency(float64(time.Since(assessStart).Milliseconds()))
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "assessment_error")
		w.logger.Error(ctx, "assessment merge failed",
			logger.String("observationID", obs.ID),
			logger.Error(err),
		)
		return fmt.Errorf("assessment merge failed for observation %s: %w", obs.ID, err)
	}

	if err := w.store.SetAssessments(ctx, obs.PlayerID, assessments); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "store_update_error")
		w.logger.Error(ctx, "assessment update failed",
			logger.String("playerID", obs.PlayerID),
			logger.Error(err),
		)
		return fmt.Errorf("assessment update failed: %w", err)
	}

	metrics.RecordObservationProcessed()
	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers  []*InMemoryWorker
	queue    Queue
	assessor Assessor
	store    Store

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, queue Queue, assessor Assessor, store Store) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*InMemoryWorker, workerCount),
		queue:    queue,
		assessor: assessor,
		store:    store,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewInMemoryWorker(
			queue,
			assessor,
			store,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerActiveCount(workerCount)
	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		go worker.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	for _, worker := range p.workers {
		select {
		case <-worker.done:
		case <-time.After(workerShutdownTimeout):
		}
	}
}

// Shutdown gracefully shuts down the entire worker pool.
func (p *Pool) Shutdown(ctx context.Context) error {
	// Close the queue first so workers drain what is left and stop.
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	close(p.shutdown)

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, worker := range p.workers {
		select {
		case <-worker.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}
