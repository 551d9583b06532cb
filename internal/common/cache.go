package common

import (
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

// Set stores the value under key. An optional expiration overrides the cache default.
func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}

	c.Cache.Set(key, value, cache.DefaultExpiration)
}

// Add stores value only when key is absent or expired.
func (c *Cache) Add(key string, value interface{}) error {
	return c.Cache.Add(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.Cache.Get(key)
}

func (c *Cache) Delete(key string) {
	c.Cache.Delete(key)
}

// Refresh restarts the default expiration of key. It reports false when key is absent.
func (c *Cache) Refresh(key string) (interface{}, bool) {
	value, ok := c.Cache.Get(key)
	if !ok {
		return nil, false
	}

	c.Cache.Set(key, value, cache.DefaultExpiration)
	return value, true
}

// Len counts the items held, including expired ones not yet cleaned up.
func (c *Cache) Len() int {
	return c.Cache.ItemCount()
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

func CacheKeySession(hash []byte) string {
	return "session:" + hex.EncodeToString(hash)
}
