package service

import (
	"context"
	"log"
	"sync"
	"time"

	"redline/internal/port"
)

// CompareQueueConfig holds settings for the comparison queue worker.
type CompareQueueConfig struct {
	PollInterval time.Duration
	MaxRetries   int
	Concurrency  int
}

// CompareQueueWorker polls for queued comparisons and dispatches them for
// processing.
type CompareQueueWorker struct {
	cmpRepo    port.ComparisonRepository
	cmpService ComparisonService
	cfg        CompareQueueConfig
	wg         sync.WaitGroup
}

// NewCompareQueueWorker creates a new CompareQueueWorker.
func NewCompareQueueWorker(cmpRepo port.ComparisonRepository, cmpService ComparisonService, cfg CompareQueueConfig) *CompareQueueWorker {
	return &CompareQueueWorker{
		cmpRepo:    cmpRepo,
		cmpService: cmpService,
		cfg:        cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight comparison goroutines have finished.
func (w *CompareQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("compareQueueWorker: started (poll=%s, concurrency=%d, maxRetries=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency, w.cfg.MaxRetries)

	for {
		select {
		case <-ctx.Done():
			log.Printf("compareQueueWorker: shutting down, waiting for in-flight comparisons...")
			w.wg.Wait()
			log.Printf("compareQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			// ClaimQueued flips rows to processing and increments attempts.
			cmps, err := w.cmpRepo.ClaimQueued(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					// Context canceled during poll, exit gracefully
					continue
				}
				log.Printf("compareQueueWorker: ClaimQueued error: %v", err)
				continue
			}

			for i := range cmps {
				cmp := cmps[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight comparisons complete even during shutdown.
					cmpCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
					defer cancel()

					log.Printf("compareQueueWorker: dispatching comparison %s (attempt %d)", cmp.ID, cmp.Attempts)
					w.cmpService.ProcessComparison(cmpCtx, &cmp, w.cfg.MaxRetries)
				}()
			}
		}
	}
}
