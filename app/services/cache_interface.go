package services

import (
	"context"

	"github.com/servis-mreza/directory/app/models"
)

// CacheStats is the hit/miss accounting exposed on the admin surface.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService caches computed search results keyed by a request
// fingerprint.
type ICacheService interface {
	Get(ctx context.Context, key string) (*models.SearchResult, bool, error)
	Set(ctx context.Context, key string, result *models.SearchResult) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	GetStats(ctx context.Context) (*CacheStats, error)
	Close() error
}
