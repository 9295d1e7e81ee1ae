package services

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/models"
)

// MemoryCacheService is the in-process L1: a bounded LRU of search results.
// Search results are cheap to recompute and keyed per location, so eviction
// is harmless.
type MemoryCacheService struct {
	cache  *lru.Cache[string, *models.SearchResult]
	logger *zap.Logger

	hits   int64
	misses int64
}

// NewMemoryCacheService creates the LRU cache with the given capacity.
func NewMemoryCacheService(size int, logger *zap.Logger) (*MemoryCacheService, error) {
	cache, err := lru.New[string, *models.SearchResult](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &MemoryCacheService{cache: cache, logger: logger}, nil
}

func (mcs *MemoryCacheService) Get(ctx context.Context, key string) (*models.SearchResult, bool, error) {
	if result, ok := mcs.cache.Get(key); ok {
		atomic.AddInt64(&mcs.hits, 1)
		return result, true, nil
	}
	atomic.AddInt64(&mcs.misses, 1)
	return nil, false, nil
}

func (mcs *MemoryCacheService) Set(ctx context.Context, key string, result *models.SearchResult) error {
	mcs.cache.Add(key, result)
	return nil
}

func (mcs *MemoryCacheService) Delete(ctx context.Context, key string) error {
	mcs.cache.Remove(key)
	return nil
}

func (mcs *MemoryCacheService) Clear(ctx context.Context) error {
	mcs.cache.Purge()
	mcs.logger.Info("memory cache cleared")
	return nil
}

func (mcs *MemoryCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&mcs.hits)
	misses := atomic.LoadInt64(&mcs.misses)

	hitRate := float64(0)
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(mcs.cache.Len()),
	}, nil
}

func (mcs *MemoryCacheService) Close() error {
	return nil
}
