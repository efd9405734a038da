package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"tableorder/internal/cache"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*Menu, error)
	ListByStore(ctx context.Context, storeID int64) ([]Menu, error)
}

type service struct {
	repo     Repository
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewService(repo Repository, c *cache.Cache, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (s *service) GetByID(ctx context.Context, id int64) (*Menu, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListByStore serves the store catalog from the menus-by-store cache slot when
// a fresh entry exists, falling through to the repository otherwise. The core
// never mutates menus, so no invalidation hook is wired; staleness is bounded
// by the TTL.
func (s *service) ListByStore(ctx context.Context, storeID int64) ([]Menu, error) {
	key := fmt.Sprintf("menus:store:%d", storeID)

	if v, ok := s.cache.Get(key); ok {
		if menus, ok := v.([]Menu); ok {
			return menus, nil
		}
	}

	menus, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		log.Error().Err(err).Int64("store_id", storeID).Msg("service: failed to list menus")
		return nil, err
	}

	s.cache.Set(key, menus, s.cacheTTL)

	return menus, nil
}
