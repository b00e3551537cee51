package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

// GuideRenderer is satisfied by guide.Generator.
type GuideRenderer interface {
	Generate(destination string, rec domain.TravelRecord) (string, error)
}

// PlanService runs the research fan-out and turns the result into a guide.
// Section failures are tolerated (the section is omitted); the demo fallback
// kicks in only when the upstream produced nothing at all.
type PlanService struct {
	src      domain.RecommendationSource
	fallback domain.RecommendationSource
	repo     domain.GuideRepository
	cache    domain.Cache
	renderer GuideRenderer
	cacheTTL int // seconds
}

func NewPlanService(src, fallback domain.RecommendationSource, repo domain.GuideRepository, cache domain.Cache, renderer GuideRenderer, cacheTTLSec int) *PlanService {
	return &PlanService{src: src, fallback: fallback, repo: repo, cache: cache, renderer: renderer, cacheTTL: cacheTTLSec}
}

// PlanTrip fetches hotels, dining and activities in parallel, maps the loose
// payloads into a typed record, then asks the source for a summary of what
// was found.
func (s *PlanService) PlanTrip(ctx context.Context, destination string) (domain.TravelRecord, error) {
	rec, err := s.planWith(ctx, s.src, destination)
	if err != nil {
		return domain.TravelRecord{}, err
	}
	if !rec.Empty() || s.fallback == nil {
		return rec, nil
	}

	// Upstream yielded nothing. Fall back to the built-in demo source so the
	// caller still gets a renderable record.
	log.Warn().Str("destination", destination).Msg("research produced no data, using fallback source")
	return s.planWith(ctx, s.fallback, destination)
}

func (s *PlanService) planWith(ctx context.Context, src domain.RecommendationSource, destination string) (domain.TravelRecord, error) {
	var rec domain.TravelRecord

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := src.Hotels(gctx, destination)
		if err != nil {
			return sectionErr(gctx, "hotels", destination, err)
		}
		rec.Hotels = mapHotelCatalog(p)
		return nil
	})
	g.Go(func() error {
		p, err := src.Dining(gctx, destination)
		if err != nil {
			return sectionErr(gctx, "dining", destination, err)
		}
		rec.Restaurants = mapDiningCatalog(p)
		return nil
	})
	g.Go(func() error {
		p, err := src.Activities(gctx, destination)
		if err != nil {
			return sectionErr(gctx, "activities", destination, err)
		}
		rec.Activities = mapActivityCatalog(p)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.TravelRecord{}, err
	}

	// Summary runs after the fan-out so it can see what the sections found.
	summary, err := src.Summary(ctx, destination, rec)
	if err != nil {
		if ctx.Err() != nil {
			return domain.TravelRecord{}, ctx.Err()
		}
		log.Warn().Str("destination", destination).Err(err).Msg("summary unavailable")
	} else {
		rec.Summary = strings.TrimSpace(summary)
	}
	return rec, nil
}

// sectionErr tolerates per-section failures: the section stays nil and the
// guide simply omits it. Only context cancellation aborts the whole plan.
func sectionErr(ctx context.Context, section, destination string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, domain.ErrNotFound) {
		log.Info().Str("destination", destination).Str("section", section).Msg("no data for section")
		return nil
	}
	log.Warn().Str("destination", destination).Str("section", section).Err(err).Msg("section research failed")
	return nil
}

// GenerateGuide produces the PDF for a destination and returns its path.
// Record persistence and the generation log are best-effort: a storage
// hiccup is logged, never surfaced, because the file on disk is the
// user-visible outcome.
func (s *PlanService) GenerateGuide(ctx context.Context, destination string) (string, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return "", fmt.Errorf("destination is required")
	}

	rec, ok := s.cachedRecord(ctx, destination)
	if !ok {
		var err error
		rec, err = s.PlanTrip(ctx, destination)
		if err != nil {
			return "", fmt.Errorf("plan %s: %w", destination, err)
		}
		if s.repo != nil {
			if err := s.repo.UpsertRecord(ctx, destination, rec); err != nil {
				log.Warn().Str("destination", destination).Err(err).Msg("persist record failed")
			}
		}
		if s.cache != nil {
			_ = s.cache.Set(ctx, recordKey(destination), rec, s.cacheTTL)
		}
	}

	path, err := s.renderer.Generate(destination, rec)
	if err != nil {
		return "", err
	}

	if s.repo != nil {
		if err := s.repo.LogGuide(ctx, destination, path); err != nil {
			log.Warn().Str("destination", destination).Err(err).Msg("log guide failed")
		}
	}
	if s.cache != nil {
		s.invalidateGuideLists(ctx)
	}
	return path, nil
}

func (s *PlanService) cachedRecord(ctx context.Context, destination string) (domain.TravelRecord, bool) {
	if s.cache == nil {
		return domain.TravelRecord{}, false
	}
	var rec domain.TravelRecord
	if ok, _ := s.cache.Get(ctx, recordKey(destination), &rec); ok {
		return rec, true
	}
	return domain.TravelRecord{}, false
}

// invalidateGuideLists clears every cached history listing. ListGuides only
// caches the limits in cachedListLimits, so this set is exhaustive.
func (s *PlanService) invalidateGuideLists(ctx context.Context) {
	for lim := range cachedListLimits {
		_ = s.cache.Del(ctx, fmt.Sprintf("%s:%d", guidesKey, lim))
	}
}

func recordKey(destination string) string {
	return "record:" + strings.ToLower(strings.TrimSpace(destination))
}

const guidesKey = "guides:recent"
