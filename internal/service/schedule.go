package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

var ErrBadInterval = errors.New("interval must be between 1 and 168 hours")

// ScheduleService owns the single global auto-search schedule and drives the
// background search loop.
type ScheduleService struct {
	repo   *repository.ScheduleRepo
	search *SearchService

	reload chan struct{}
	stopCh chan struct{}
}

func NewScheduleService(repo *repository.ScheduleRepo, search *SearchService) *ScheduleService {
	return &ScheduleService{
		repo:   repo,
		search: search,
		reload: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
	}
}

func (s *ScheduleService) Get(ctx context.Context) (*model.ScheduleConfig, error) {
	return s.repo.Get(ctx)
}

// Set validates and stores the schedule, then wakes the loop so the new
// interval takes effect immediately.
func (s *ScheduleService) Set(ctx context.Context, req model.ScheduleRequest) (*model.ScheduleConfig, error) {
	if req.IntervalHours < model.MinIntervalHours || req.IntervalHours > model.MaxIntervalHours {
		return nil, fmt.Errorf("%w: got %d", ErrBadInterval, req.IntervalHours)
	}
	if err := s.repo.Set(ctx, req.Enabled, req.IntervalHours); err != nil {
		return nil, err
	}

	select {
	case s.reload <- struct{}{}:
	default:
	}
	return s.repo.Get(ctx)
}

// Start runs the scheduled-search loop. The ticker restarts whenever the
// schedule changes; a disabled schedule parks the loop until the next change.
func (s *ScheduleService) Start(ctx context.Context) {
	log.Println("schedule-worker: starting")

	for {
		cfg, err := s.repo.Get(ctx)
		if err != nil {
			log.Printf("schedule-worker: load config: %v", err)
			cfg = &model.ScheduleConfig{}
		}

		if !cfg.Enabled {
			select {
			case <-s.reload:
				continue
			case <-ctx.Done():
				log.Println("schedule-worker: stopping (context cancelled)")
				return
			case <-s.stopCh:
				log.Println("schedule-worker: stopping (stop signal)")
				return
			}
		}

		interval := time.Duration(cfg.IntervalHours) * time.Hour
		timer := time.NewTimer(interval)
		select {
		case <-timer.C:
			s.tick(ctx)
		case <-s.reload:
			timer.Stop()
		case <-ctx.Done():
			timer.Stop()
			log.Println("schedule-worker: stopping (context cancelled)")
			return
		case <-s.stopCh:
			timer.Stop()
			log.Println("schedule-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the loop to stop.
func (s *ScheduleService) Stop() {
	close(s.stopCh)
}

func (s *ScheduleService) tick(ctx context.Context) {
	if s.search == nil || !s.search.Enabled() {
		log.Println("schedule-worker: search not configured, skipping tick")
		return
	}
	start := time.Now()
	resp, err := s.search.SearchKeywords(ctx, model.KeywordSearchRequest{})
	if err != nil {
		log.Printf("schedule-worker: search error: %v", err)
		return
	}
	log.Printf("schedule-worker: tick complete, %d found, %d new (%s)",
		resp.TotalFound, resp.TotalNew, time.Since(start).Round(time.Millisecond))
}
