package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appmapping "github.com/shopadmin/backend/internal/application/mapping"
	"github.com/shopadmin/backend/internal/domain/taxonomy"
)

const defaultTreeTTL = 15 * time.Minute

// RedisTreeCache caches assembled vendor category forests in Redis so the
// mapping screens do not rebuild the tree from feed rows on every request.
// Cache failures are logged and treated as misses; Redis being down must
// never take the mapping screens down with it.
type RedisTreeCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TreeTTL  time.Duration
}

// NewRedisTreeCache creates a new Redis-backed vendor tree cache
func NewRedisTreeCache(cfg RedisConfig, logger *zap.Logger) (*RedisTreeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisTreeCacheWithClient(client, cfg.TreeTTL, logger), nil
}

// NewRedisTreeCacheWithClient creates a cache with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisTreeCacheWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisTreeCache {
	if ttl <= 0 {
		ttl = defaultTreeTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisTreeCache{
		client:    client,
		keyPrefix: "vendor:tree:",
		ttl:       ttl,
		logger:    logger.Named("tree_cache"),
	}
}

// Get returns the cached forest for a vendor, if present
func (c *RedisTreeCache) Get(ctx context.Context, vendorCode string) (taxonomy.Forest, bool) {
	payload, err := c.client.Get(ctx, c.keyPrefix+vendorCode).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("tree cache read failed",
				zap.String("vendor", vendorCode),
				zap.Error(err))
		}
		return nil, false
	}

	var forest taxonomy.Forest
	if err := json.Unmarshal(payload, &forest); err != nil {
		c.logger.Warn("tree cache entry corrupt, dropping",
			zap.String("vendor", vendorCode),
			zap.Error(err))
		c.Invalidate(ctx, vendorCode)
		return nil, false
	}
	return forest, true
}

// Set stores the forest for a vendor
func (c *RedisTreeCache) Set(ctx context.Context, vendorCode string, forest taxonomy.Forest) {
	payload, err := json.Marshal(forest)
	if err != nil {
		c.logger.Warn("tree cache encode failed",
			zap.String("vendor", vendorCode),
			zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, c.keyPrefix+vendorCode, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("tree cache write failed",
			zap.String("vendor", vendorCode),
			zap.Error(err))
	}
}

// Invalidate drops the cached forest for a vendor
func (c *RedisTreeCache) Invalidate(ctx context.Context, vendorCode string) {
	if err := c.client.Del(ctx, c.keyPrefix+vendorCode).Err(); err != nil {
		c.logger.Warn("tree cache invalidate failed",
			zap.String("vendor", vendorCode),
			zap.Error(err))
	}
}

// Close closes the Redis client
func (c *RedisTreeCache) Close() error {
	return c.client.Close()
}

// Ensure RedisTreeCache implements VendorTreeCache
var _ appmapping.VendorTreeCache = (*RedisTreeCache)(nil)
