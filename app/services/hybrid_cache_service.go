package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/models"
)

// HybridCacheService combines the in-process LRU (L1) with Redis (L2). L1
// misses fall through to Redis; L2 hits are copied back into L1 in the
// background.
type HybridCacheService struct {
	memory *MemoryCacheService
	redis  *RedisCacheService
	logger *zap.Logger
}

// NewHybridCacheService wires the two cache tiers together.
func NewHybridCacheService(memory *MemoryCacheService, redisCache *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{
		memory: memory,
		redis:  redisCache,
		logger: logger,
	}
}

func (hcs *HybridCacheService) Get(ctx context.Context, key string) (*models.SearchResult, bool, error) {
	result, found, err := hcs.memory.Get(ctx, key)
	if err == nil && found {
		hcs.logger.Debug("L1 cache hit", zap.String("key", key))
		return result, true, nil
	}

	result, found, err = hcs.redis.Get(ctx, key)
	if err != nil {
		// Redis being down only costs recomputation.
		hcs.logger.Warn("redis cache error, treating as miss", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := hcs.memory.Set(bgCtx, key, result); err != nil {
			hcs.logger.Warn("L2->L1 sync failed", zap.Error(err), zap.String("key", key))
		}
	}()

	hcs.logger.Debug("L2 cache hit", zap.String("key", key))
	return result, true, nil
}

func (hcs *HybridCacheService) Set(ctx context.Context, key string, result *models.SearchResult) error {
	errCh := make(chan error, 2)

	go func() { errCh <- hcs.memory.Set(ctx, key, result) }()
	go func() { errCh <- hcs.redis.Set(ctx, key, result) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cache errors: %v", errs)
	}
	return nil
}

func (hcs *HybridCacheService) Delete(ctx context.Context, key string) error {
	if err := hcs.memory.Delete(ctx, key); err != nil {
		return err
	}
	return hcs.redis.Delete(ctx, key)
}

func (hcs *HybridCacheService) Clear(ctx context.Context) error {
	if err := hcs.memory.Clear(ctx); err != nil {
		return err
	}
	return hcs.redis.Clear(ctx)
}

// GetStats aggregates both tiers; item count is the L2 count since L1 is a
// strict subset under normal operation.
func (hcs *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	memStats, err := hcs.memory.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	redisStats, err := hcs.redis.GetStats(ctx)
	if err != nil {
		return memStats, nil
	}

	hits := memStats.TotalHits + redisStats.TotalHits
	misses := redisStats.TotalMiss

	hitRate := float64(0)
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: redisStats.TotalItems,
	}, nil
}

func (hcs *HybridCacheService) Close() error {
	if err := hcs.memory.Close(); err != nil {
		return err
	}
	return hcs.redis.Close()
}
