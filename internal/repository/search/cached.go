package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/cdcp/search-api/internal/cache"
)

const cacheKeyPrefix = "searchapi:select:"

// store is the consumer interface for the select cache.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// selecter matches the repository surface being decorated.
type selecter interface {
	Select(ctx context.Context, core string, params url.Values) ([]byte, error)
}

// CachedRepo caches Solr select responses in a key-value store.
// Search results change only on reindex, so a short TTL absorbs the
// facet-heavy repeat queries the catalogue UI generates.
type CachedRepo struct {
	inner      selecter
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// NewCached creates a caching decorator around a select repository.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func NewCached(
	inner selecter,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedRepo {
	return &CachedRepo{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Select returns a cached response or falls through to the inner repository.
func (c *CachedRepo) Select(ctx context.Context, core string, params url.Values) ([]byte, error) {
	key := cacheKey(core, params)

	if body, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return body, nil
	}

	c.incCache("miss")

	body, err := c.inner.Select(ctx, core, params)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	c.putToCache(ctx, key, body)
	return body, nil
}

func (c *CachedRepo) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes the core and the encoded parameter set. url.Values.Encode
// sorts keys, so equivalent queries share a key.
func cacheKey(core string, params url.Values) string {
	h := sha256.Sum256([]byte(core + "?" + params.Encode()))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedRepo) getFromCache(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached response", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (c *CachedRepo) putToCache(ctx context.Context, key string, body []byte) {
	if err := c.store.SetWithTTL(ctx, key, body, c.ttl); err != nil {
		c.logger.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}
}
