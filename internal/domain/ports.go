package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// RecommendationSource is the upstream research collaborator. Section
// payloads come back as loose JSON objects; the app layer maps them into
// typed catalogs. Formatting of prices, costs and dates is entirely the
// source's responsibility.
type RecommendationSource interface {
	Hotels(ctx context.Context, destination string) (map[string]any, error)
	Dining(ctx context.Context, destination string) (map[string]any, error)
	Activities(ctx context.Context, destination string) (map[string]any, error)
	Summary(ctx context.Context, destination string, rec TravelRecord) (string, error)
}

type GuideRepository interface {
	// Write paths
	UpsertRecord(ctx context.Context, destination string, rec TravelRecord) error
	LogGuide(ctx context.Context, destination, path string) error

	// Read paths
	GetRecord(ctx context.Context, destination string) (TravelRecord, error)
	ListGuides(ctx context.Context, limit int) ([]GuideEntry, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
