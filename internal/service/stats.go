package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

// StatsService assembles the dashboard aggregate, cached briefly in Redis.
type StatsService struct {
	stats   *repository.StatsRepo
	logs    *repository.SearchLogRepo
	configs *repository.AutoUpdateRepo
	cache   *CacheService
}

func NewStatsService(stats *repository.StatsRepo, logs *repository.SearchLogRepo,
	configs *repository.AutoUpdateRepo, cache *CacheService) *StatsService {
	return &StatsService{stats: stats, logs: logs, configs: configs, cache: cache}
}

// Get returns the aggregate, serving from cache when fresh.
func (s *StatsService) Get(ctx context.Context) (*model.Stats, error) {
	if cached, err := s.cache.GetStats(ctx); err == nil && cached != nil {
		var stats model.Stats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetStats(ctx, stats); err != nil {
		log.Printf("stats: cache set: %v", err)
	}
	return stats, nil
}

func (s *StatsService) compute(ctx context.Context) (*model.Stats, error) {
	stats, err := s.stats.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	if last, err := s.logs.LastSearch(ctx); err == nil && last != nil {
		formatted := last.Format(time.RFC3339)
		stats.LastSearch = &formatted
	}

	configs, err := s.configs.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range configs {
		decorate(&configs[i], now)
		if configs[i].Enabled {
			stats.AutoUpdateEnabled++
			if configs[i].NeedsUpdate {
				stats.AutoUpdateNeedsUpdate++
			}
		}
	}
	stats.AutoUpdateDisabled = stats.TotalArtists - stats.AutoUpdateEnabled
	return stats, nil
}
