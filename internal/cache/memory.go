// Package cache memoizes info-gain rankings for the HTTP service.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"wordlesolver/internal/solver"
)

// InfoCache holds info-gain rankings keyed by the set of guessed letters.
// The ranking depends only on the dictionary and those letters, so one
// cache must only ever serve a single dictionary.
type InfoCache struct {
	cache *gocache.Cache
}

// NewInfoCache creates a cache whose entries expire after ttl.
func NewInfoCache(ttl time.Duration, cleanupInterval time.Duration) *InfoCache {
	return &InfoCache{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

func key(letters solver.LetterSet) string {
	return "info:" + letters.String()
}

// Get retrieves the ranking for letters.
func (c *InfoCache) Get(letters solver.LetterSet) ([]solver.Scored, bool) {
	if val, found := c.cache.Get(key(letters)); found {
		return val.([]solver.Scored), true
	}
	return nil, false
}

// Set stores a ranking for letters with the default TTL.
func (c *InfoCache) Set(letters solver.LetterSet, ranked []solver.Scored) {
	c.cache.SetDefault(key(letters), ranked)
}

// GetOrCompute returns the cached ranking for letters, computing and
// storing it on a miss. The second result reports a cache hit.
func (c *InfoCache) GetOrCompute(letters solver.LetterSet, compute func() []solver.Scored) ([]solver.Scored, bool) {
	if ranked, ok := c.Get(letters); ok {
		return ranked, true
	}
	ranked := compute()
	c.Set(letters, ranked)
	return ranked, false
}

// Len returns the number of cached rankings, including expired ones not
// yet cleaned up.
func (c *InfoCache) Len() int {
	return c.cache.ItemCount()
}

// Clear removes every cached ranking.
func (c *InfoCache) Clear() {
	c.cache.Flush()
}
