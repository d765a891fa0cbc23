package service

import (
	"context"
	"errors"
	"log"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrNothingToDo   = errors.New("nothing to update")
)

// VideoService wraps video mutations with validation and cache invalidation.
type VideoService struct {
	videos *repository.VideoRepo
	cache  *CacheService
}

func NewVideoService(videos *repository.VideoRepo, cache *CacheService) *VideoService {
	return &VideoService{videos: videos, cache: cache}
}

func (s *VideoService) List(ctx context.Context, filters model.VideoFilters) ([]model.Video, error) {
	return s.videos.List(ctx, filters)
}

func (s *VideoService) Update(ctx context.Context, id int64, req model.VideoUpdateRequest) error {
	if req.Status == "" && req.Priority == "" {
		return ErrNothingToDo
	}
	ok, err := s.videos.Update(ctx, id, req.Status, req.Priority)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVideoNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *VideoService) BatchUpdate(ctx context.Context, req model.BatchUpdateRequest) (int, error) {
	if len(req.VideoIDs) == 0 {
		return 0, ErrNothingToDo
	}
	n, err := s.videos.BatchUpdate(ctx, req.VideoIDs, req.Status, req.Priority)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return n, nil
}

func (s *VideoService) Delete(ctx context.Context, id int64) error {
	ok, err := s.videos.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVideoNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *VideoService) BatchDelete(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, ErrNothingToDo
	}
	n, err := s.videos.BatchDelete(ctx, ids)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return n, nil
}

// ClearAll wipes the review queue and the search history with it.
func (s *VideoService) ClearAll(ctx context.Context) (int, error) {
	n, err := s.videos.ClearAll(ctx)
	if err != nil {
		return 0, err
	}
	s.invalidate(ctx)
	return n, nil
}

func (s *VideoService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateStats(ctx); err != nil {
		log.Printf("videos: invalidate stats cache: %v", err)
	}
}
