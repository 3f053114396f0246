package movies

import (
	"context"
	"fmt"
	"time"

	"cineshow/pkg/cache"
)

const listCacheKey = "cineshow:movies:all"

// Service interface defines the contract for movie catalog reads
type Service interface {
	ListMovies(ctx context.Context) ([]Movie, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService creates a new movie service instance. cacheService may be nil,
// in which case every read goes to the database.
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *service) ListMovies(ctx context.Context) ([]Movie, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	var records []Movie
	err := s.cache.GetOrSet(ctx, listCacheKey, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	}, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return records, nil
}
