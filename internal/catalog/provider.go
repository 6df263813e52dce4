package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"scopeworks/internal/model"
	"scopeworks/pkg/logger"
	"scopeworks/pkg/metrics"
)

const cacheKey = "catalog:services"

// Provider hands out a catalog snapshot. Services never fails; degraded
// providers fall back to the compiled-in catalog.
type Provider interface {
	Services(ctx context.Context) []model.Service
	Refresh(ctx context.Context) error
}

// CachedProvider caches live snapshots in Redis with a TTL. Cache miss
// goes to the live client; live failure goes to the fallback catalog.
type CachedProvider struct {
	client *Client
	cache  *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCachedProvider(client *Client, cache *redis.Client, ttl time.Duration, log *zap.Logger) *CachedProvider {
	return &CachedProvider{client: client, cache: cache, ttl: ttl, log: log}
}

func (p *CachedProvider) Services(ctx context.Context) []model.Service {
	if cached := p.fromCache(ctx); cached != nil {
		return cached
	}

	services, err := p.client.FetchServices(ctx)
	if err != nil {
		logger.WithTrace(ctx, p.log).Warn("live catalog unavailable, using fallback",
			zap.Error(err))
		metrics.RecordCatalogFetchLatency("fallback", "success", 0)
		return FallbackServices()
	}

	p.store(ctx, services)
	return services
}

// Refresh forces a live fetch and rewrites the cache. Used by the admin
// refresh endpoint; unlike Services, a live failure is reported.
func (p *CachedProvider) Refresh(ctx context.Context) error {
	services, err := p.client.FetchServices(ctx)
	if err != nil {
		return err
	}
	p.store(ctx, services)
	return nil
}

func (p *CachedProvider) fromCache(ctx context.Context) []model.Service {
	if p.cache == nil {
		return nil
	}

	raw, err := p.cache.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithTrace(ctx, p.log).Warn("catalog cache read failed", zap.Error(err))
		}
		return nil
	}

	var services []model.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		logger.WithTrace(ctx, p.log).Warn("catalog cache entry corrupt, discarding", zap.Error(err))
		p.cache.Del(ctx, cacheKey)
		return nil
	}

	metrics.RecordCatalogFetchLatency("cache", "success", 0)
	return services
}

// store is best effort; a cache write failure only costs the next caller
// a live fetch.
func (p *CachedProvider) store(ctx context.Context, services []model.Service) {
	if p.cache == nil {
		return
	}

	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, cacheKey, raw, p.ttl).Err(); err != nil {
		logger.WithTrace(ctx, p.log).Warn("catalog cache write failed", zap.Error(err))
	}
}

// StaticProvider serves a fixed snapshot. Used in tests and when no
// catalog endpoint is configured.
type StaticProvider struct {
	services []model.Service
}

func NewStaticProvider(services []model.Service) *StaticProvider {
	return &StaticProvider{services: services}
}

func (p *StaticProvider) Services(context.Context) []model.Service { return p.services }

func (p *StaticProvider) Refresh(context.Context) error { return nil }
