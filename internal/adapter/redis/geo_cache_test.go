package rediscache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-pricing/internal/core/domain"
	"campaign-pricing/internal/core/port/mocks"
	"campaign-pricing/internal/metrics"
)

// fakeRedis keeps GET/SET in memory; every other command panics through the
// nil embedded interface.
type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	v, ok := f.data[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if f.setErr != nil {
		cmd.SetErr(f.setErr)
		return cmd
	}
	f.data[key] = string(value.([]byte))
	f.ttls[key] = expiration
	cmd.SetVal("OK")
	return cmd
}

type cacheFixture struct {
	inner   *mocks.MockGeoRegistry
	redis   *fakeRedis
	metrics *metrics.Metrics
	cache   *GeoCache
}

func createTestGeoCache(t *testing.T) cacheFixture {
	fx := cacheFixture{
		inner:   mocks.NewMockGeoRegistry(t),
		redis:   newFakeRedis(),
		metrics: metrics.NewMetrics("test", prometheus.NewRegistry()),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx.cache = NewGeoCache(fx.inner, fx.redis, time.Hour, fx.metrics, logger)
	return fx
}

func TestGeoCache_FindCountry_ReadThrough(t *testing.T) {
	fx := createTestGeoCache(t)
	ctx := context.Background()
	us := &domain.GeoFact{ID: 1, CountryCode: "US", CountryName: "United States", Population: 331_000_000, LandAreaSqKm: 9_833_520, TaxRate: 0}

	fx.inner.EXPECT().FindCountry(ctx, "us").Return(us, nil).Once()

	got, err := fx.cache.FindCountry(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, us, got)
	assert.Equal(t, time.Hour, fx.redis.ttls["geo:country:US"])

	// served from the cache; the mock would fail on a second call
	got, err = fx.cache.FindCountry(ctx, "us")
	require.NoError(t, err)
	assert.Equal(t, us, got)

	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.GeoCacheMisses.WithLabelValues("country")))
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.GeoCacheHits.WithLabelValues("country")))
}

func TestGeoCache_FindRegion_CachesAbsence(t *testing.T) {
	fx := createTestGeoCache(t)
	ctx := context.Background()

	fx.inner.EXPECT().FindRegion(ctx, "US", "ZZ").Return(nil, nil).Once()

	got, err := fx.cache.FindRegion(ctx, "US", "ZZ")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, "null", fx.redis.data["geo:region:US:ZZ"])

	got, err = fx.cache.FindRegion(ctx, "US", "ZZ")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.GeoCacheHits.WithLabelValues("region")))
}

func TestGeoCache_InnerErrorIsNotCached(t *testing.T) {
	fx := createTestGeoCache(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	fx.inner.EXPECT().FindCountry(ctx, "DE").Return(nil, dbErr).Once()

	_, err := fx.cache.FindCountry(ctx, "DE")
	assert.ErrorIs(t, err, dbErr)
	assert.Empty(t, fx.redis.data)
}

func TestGeoCache_RedisDownFallsThrough(t *testing.T) {
	fx := createTestGeoCache(t)
	ctx := context.Background()
	fx.redis.getErr = errors.New("dial tcp: connection refused")
	fx.redis.setErr = errors.New("dial tcp: connection refused")
	gb := &domain.GeoFact{CountryCode: "GB", TaxRate: 20}

	fx.inner.EXPECT().FindCountry(ctx, "GB").Return(gb, nil).Twice()

	for i := 0; i < 2; i++ {
		got, err := fx.cache.FindCountry(ctx, "GB")
		require.NoError(t, err)
		assert.Equal(t, gb, got)
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(fx.metrics.GeoCacheMisses.WithLabelValues("country")))
}

func TestGeoCache_CorruptEntryIsReloaded(t *testing.T) {
	fx := createTestGeoCache(t)
	ctx := context.Background()
	fx.redis.data["geo:country:AU"] = "{not json"
	au := &domain.GeoFact{CountryCode: "AU", TaxRate: 10}

	fx.inner.EXPECT().FindCountry(ctx, "AU").Return(au, nil).Once()

	got, err := fx.cache.FindCountry(ctx, "AU")
	require.NoError(t, err)
	assert.Equal(t, au, got)
	assert.JSONEq(t, `{"id":0,"country_code":"AU","country_name":"","population":0,"land_area_sq_km":0,"density_multiplier":0,"tax_rate":10}`, fx.redis.data["geo:country:AU"])
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "geo:country:US", countryKey(" us "))
	assert.Equal(t, "geo:region:AU:NSW", regionKey("au", "nsw"))
}
