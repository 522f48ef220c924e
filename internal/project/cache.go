package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	projectmetrics "plotdesk/internal/project/metrics"
)

const (
	catalogListKey       = "catalog:projects"
	catalogProjectPrefix = "catalog:project:"
)

// CachedStore layers a Redis read-through cache over a Store. The catalog
// changes rarely, so stale reads within the TTL are acceptable. Cache
// failures fall back to the backing store.
type CachedStore struct {
	store   Store
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *projectmetrics.Metrics
}

func NewCachedStore(store Store, client *redis.Client, ttl time.Duration, logger *slog.Logger, metrics *projectmetrics.Metrics) *CachedStore {
	return &CachedStore{
		store:   store,
		client:  client,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

// Save writes through to the backing store and invalidates cached entries.
func (c *CachedStore) Save(ctx context.Context, p *Project) error {
	if err := c.store.Save(ctx, p); err != nil {
		return err
	}
	if err := c.client.Del(ctx, catalogListKey, catalogProjectPrefix+p.Slug).Err(); err != nil {
		c.logger.WarnContext(ctx, "failed to invalidate catalog cache",
			"slug", p.Slug,
			"error", err,
		)
	}
	return nil
}

func (c *CachedStore) List(ctx context.Context) ([]*Project, error) {
	var cached []*Project
	if c.lookup(ctx, catalogListKey, &cached) {
		return cached, nil
	}
	projects, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, catalogListKey, projects)
	return projects, nil
}

func (c *CachedStore) FindBySlug(ctx context.Context, slug string) (*Project, error) {
	key := catalogProjectPrefix + slug
	var cached *Project
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}
	p, err := c.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	c.fill(ctx, key, p)
	return p, nil
}

// lookup reports whether the key was found and decoded into dest.
func (c *CachedStore) lookup(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.ObserveCacheLookup("miss")
		return false
	}
	if err != nil {
		c.metrics.ObserveCacheLookup("error")
		c.logger.WarnContext(ctx, "catalog cache read failed",
			"key", key,
			"error", err,
		)
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.metrics.ObserveCacheLookup("error")
		c.logger.WarnContext(ctx, "catalog cache entry corrupt",
			"key", key,
			"error", err,
		)
		return false
	}
	c.metrics.ObserveCacheLookup("hit")
	return true
}

func (c *CachedStore) fill(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err == nil {
		err = c.client.Set(ctx, key, raw, c.ttl).Err()
	}
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed",
			"key", key,
			"error", fmt.Errorf("fill %s: %w", key, err),
		)
	}
}
