package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

type QueryService struct {
	repo     domain.GuideRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.GuideRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetRecord(ctx context.Context, destination string) (domain.TravelRecord, error) {
	key := recordKey(destination)
	var rec domain.TravelRecord
	if ok, _ := s.cache.Get(ctx, key, &rec); ok {
		return rec, nil
	}
	rec, err := s.repo.GetRecord(ctx, destination)
	if err != nil {
		return domain.TravelRecord{}, err
	}
	_ = s.cache.Set(ctx, key, rec, int(s.cacheTTL.Seconds()))
	return rec, nil
}

// cachedListLimits are the only history page sizes kept in the cache. Other
// limits bypass it entirely, so invalidation after a new guide only has to
// clear these keys and can never leave a stale odd-sized listing behind.
var cachedListLimits = map[int]bool{20: true, 50: true, 100: true}

func (s *QueryService) ListGuides(ctx context.Context, limit int) ([]domain.GuideEntry, error) {
	if !cachedListLimits[limit] {
		return s.repo.ListGuides(ctx, limit)
	}
	key := fmt.Sprintf("%s:%d", guidesKey, limit)
	var out []domain.GuideEntry
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}

	entries, err := s.repo.ListGuides(ctx, limit)
	if err != nil {
		return nil, err
	}

	// copy to avoid aliasing the repo's backing array in the cache
	cp := make([]domain.GuideEntry, len(entries))
	copy(cp, entries)
	_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	return cp, nil
}
