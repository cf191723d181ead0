package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "geocode:"

// redisStore is the subset of *redis.Client the cache needs.
type redisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// cachedGeocoder memoizes geocoder answers in Redis. Cache failures are
// logged and never fail the lookup.
type cachedGeocoder struct {
	next   service.Geocoder
	store  redisStore
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGeocoder wraps next with a Redis cache.
func NewCachedGeocoder(next service.Geocoder, store redisStore, ttl time.Duration, logger *slog.Logger) service.Geocoder {
	return &cachedGeocoder{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// CacheKey returns the Redis key for an address query. Case and runs of
// whitespace are folded; punctuation is kept so "1-3" and "13" stay apart.
func CacheKey(address string) string {
	folded := strings.ReplaceAll(strings.ToLower(address), ",", ", ")

	return cacheKeyPrefix + strings.Join(strings.Fields(folded), " ")
}

func (g *cachedGeocoder) Geocode(ctx context.Context, address string) (service.GeocodeResult, error) {
	key := CacheKey(address)

	raw, err := g.store.Get(ctx, key).Result()
	switch {
	case err == nil:
		var cached service.GeocodeResult
		if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
			return cached, nil
		}
		g.logger.WarnContext(ctx, "Dropping malformed geocode cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		g.logger.WarnContext(ctx, "Geocode cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	result, err := g.next.Geocode(ctx, address)
	if err != nil {
		return service.GeocodeResult{}, err
	}

	// Empty answers are not cached so a later retry can succeed.
	if result.IsEmpty() {
		return result, nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return result, nil
	}
	if err := g.store.Set(ctx, key, payload, g.ttl).Err(); err != nil {
		g.logger.WarnContext(ctx, "Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return result, nil
}
