package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/models"
)

// RedisCacheService is the shared L2 cache for search results.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   int64
	misses int64
}

// NewRedisCacheService connects to Redis and verifies the connection.
func NewRedisCacheService(redisURL string, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis unreachable: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "servis_mreza:search:",
		// Short TTL: the firm list changes when applications are approved and
		// cached pages must not outlive it by much.
		ttl: 15 * time.Minute,
	}, nil
}

func (rcs *RedisCacheService) Get(ctx context.Context, key string) (*models.SearchResult, bool, error) {
	val, err := rcs.client.Get(ctx, rcs.prefix+key).Result()
	if err == redis.Nil {
		atomic.AddInt64(&rcs.misses, 1)
		return nil, false, nil
	}
	if err != nil {
		rcs.logger.Error("redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}

	var result models.SearchResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		rcs.logger.Error("unmarshal cached result failed", zap.Error(err))
		return nil, false, err
	}

	atomic.AddInt64(&rcs.hits, 1)
	rcs.logger.Debug("redis cache hit", zap.String("key", key))
	return &result, true, nil
}

func (rcs *RedisCacheService) Set(ctx context.Context, key string, result *models.SearchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal cached result: %w", err)
	}

	if err := rcs.client.Set(ctx, rcs.prefix+key, data, rcs.ttl).Err(); err != nil {
		rcs.logger.Error("redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

func (rcs *RedisCacheService) Delete(ctx context.Context, key string) error {
	if err := rcs.client.Del(ctx, rcs.prefix+key).Err(); err != nil {
		rcs.logger.Error("redis delete failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

func (rcs *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("list cache keys: %w", err)
	}

	if len(keys) > 0 {
		if err := rcs.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("delete cache keys: %w", err)
		}
	}

	rcs.logger.Info("redis cache cleared", zap.Int("keys_deleted", len(keys)))
	return nil
}

func (rcs *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits := atomic.LoadInt64(&rcs.hits)
	misses := atomic.LoadInt64(&rcs.misses)

	hitRate := float64(0)
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	totalItems := int64(0)
	if keys, err := rcs.client.Keys(ctx, rcs.prefix+"*").Result(); err == nil {
		totalItems = int64(len(keys))
	}

	return &CacheStats{
		HitRate:    hitRate,
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: totalItems,
	}, nil
}

func (rcs *RedisCacheService) Close() error {
	return rcs.client.Close()
}
