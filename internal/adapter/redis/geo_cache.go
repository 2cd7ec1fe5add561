package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-pricing/internal/core/domain"
	"campaign-pricing/internal/core/port"
	"campaign-pricing/internal/metrics"
)

const (
	levelCountry = "country"
	levelRegion  = "region"

	keyPrefix = "geo:"
)

// GeoCache is a read-through cache in front of a port.GeoRegistry. Absent
// facts are cached too, stored as JSON null. Redis failures are logged and
// the lookup falls through to the wrapped registry; errors of the wrapped
// registry are returned unchanged and never cached.
type GeoCache struct {
	next    port.GeoRegistry
	client  redis.Cmdable
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewGeoCache wraps next with a cache stored in client.
func NewGeoCache(next port.GeoRegistry, client redis.Cmdable, ttl time.Duration, m *metrics.Metrics, logger *slog.Logger) *GeoCache {
	return &GeoCache{
		next:    next,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func (c *GeoCache) FindRegion(ctx context.Context, countryCode, stateCode string) (*domain.GeoFact, error) {
	return c.lookup(ctx, levelRegion, regionKey(countryCode, stateCode), func() (*domain.GeoFact, error) {
		return c.next.FindRegion(ctx, countryCode, stateCode)
	})
}

func (c *GeoCache) FindCountry(ctx context.Context, countryCode string) (*domain.GeoFact, error) {
	return c.lookup(ctx, levelCountry, countryKey(countryCode), func() (*domain.GeoFact, error) {
		return c.next.FindCountry(ctx, countryCode)
	})
}

func (c *GeoCache) lookup(ctx context.Context, level, key string, load func() (*domain.GeoFact, error)) (*domain.GeoFact, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var fact *domain.GeoFact
		if err = json.Unmarshal(raw, &fact); err == nil {
			c.metrics.RecordGeoCache(level, true)
			return fact, nil
		}
		c.logger.Warn("geo cache decode error", slog.String("key", key), slog.Any("error", err))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("geo cache read error", slog.String("key", key), slog.Any("error", err))
	}
	c.metrics.RecordGeoCache(level, false)

	fact, err := load()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fact)
	if err == nil {
		err = c.client.Set(ctx, key, payload, c.ttl).Err()
	}
	if err != nil {
		c.logger.Warn("geo cache write error", slog.String("key", key), slog.Any("error", err))
	}
	return fact, nil
}

func countryKey(countryCode string) string {
	return keyPrefix + levelCountry + ":" + normalize(countryCode)
}

func regionKey(countryCode, stateCode string) string {
	return keyPrefix + levelRegion + ":" + normalize(countryCode) + ":" + normalize(stateCode)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
