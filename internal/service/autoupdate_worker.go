package service

import (
	"context"
	"log"
	"time"
)

// AutoUpdateWorker ticks hourly and refreshes whichever artists are due.
type AutoUpdateWorker struct {
	svc      *AutoUpdateService
	interval time.Duration
	stopCh   chan struct{}
}

func NewAutoUpdateWorker(svc *AutoUpdateService, interval time.Duration) *AutoUpdateWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AutoUpdateWorker{
		svc:      svc,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs one tick immediately, then every interval.
func (w *AutoUpdateWorker) Start(ctx context.Context) {
	log.Printf("auto-update-worker: starting (interval=%s)", w.interval)

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("auto-update-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("auto-update-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *AutoUpdateWorker) Stop() {
	close(w.stopCh)
}

func (w *AutoUpdateWorker) tick(ctx context.Context) {
	start := time.Now()

	resp, err := w.svc.RunAll(ctx)
	if err != nil {
		log.Printf("auto-update-worker: error: %v", err)
		return
	}

	if resp.TotalArtistsUpdated > 0 {
		log.Printf("auto-update-worker: tick complete, %d artists refreshed, %d new songs (%s)",
			resp.TotalArtistsUpdated, resp.TotalNewSongs, time.Since(start).Round(time.Millisecond))
	}
}
