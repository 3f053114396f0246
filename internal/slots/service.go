package slots

import (
	"context"
	"fmt"
	"time"

	"cineshow/pkg/cache"
)

const listCacheKey = "cineshow:slots:all"

type Service interface {
	ListSlots(ctx context.Context) ([]DateTimeSlot, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *service) ListSlots(ctx context.Context) ([]DateTimeSlot, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	var records []DateTimeSlot
	err := s.cache.GetOrSet(ctx, listCacheKey, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	}, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	return records, nil
}
