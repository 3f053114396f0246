package shows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cineshow/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const listCacheKey = "cineshow:shows:all"

// ErrShowNotFound is returned when the referenced show does not exist.
var ErrShowNotFound = errors.New("show not found")

type Service interface {
	ListShows(ctx context.Context) ([]Show, error)
	GetShow(ctx context.Context, id uuid.UUID) (*Show, error)
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

// ListShows returns every show including its occupancy map, so clients can
// render seat availability. Served cache-aside; bookings invalidate the key.
func (s *service) ListShows(ctx context.Context) ([]Show, error) {
	if s.cache == nil {
		return s.repo.GetAll(ctx)
	}

	var records []Show
	err := s.cache.GetOrSet(ctx, listCacheKey, s.cacheTTL, func() (interface{}, error) {
		return s.repo.GetAll(ctx)
	}, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}
	return records, nil
}

func (s *service) GetShow(ctx context.Context, id uuid.UUID) (*Show, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("failed to get show: %w", err)
	}
	return record, nil
}

// ListCacheKey exposes the listing cache key so the booking flow can
// invalidate stale seat maps after a reservation.
func ListCacheKey() string {
	return listCacheKey
}
