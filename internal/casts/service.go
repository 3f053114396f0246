package casts

import (
	"context"
	"fmt"
	"time"

	"cineshow/pkg/cache"
)

const listCacheKey = "cineshow:casts:all"

type Service interface {
	ListCasts(ctx context.Context) ([]Cast, error)
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

func (s *service) ListCasts(ctx context.Context) ([]Cast, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	var records []Cast
	err := s.cache.GetOrSet(ctx, listCacheKey, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	}, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to list casts: %w", err)
	}
	return records, nil
}
