package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupTestEnvironment(t *testing.T) (*Cache, func()) {
	t.Helper()

	cache := NewCache(0, 0)

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_Set(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")

	if _, ok := cache.Get("key"); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_SetWithExpiration(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get("key")
	assert.False(t, ok, "expected key to expire")
}

func TestCache_Delete(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Delete("key")

	_, ok := cache.Get("key")
	assert.False(t, ok)
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Flush()

	if _, ok := cache.Get("key"); ok {
		t.Error("expected cache to be flushed")
	}
}

func TestCacheKeySession(t *testing.T) {
	assert.Equal(t, "session:0aff", CacheKeySession([]byte{0x0a, 0xff}))
}

func TestCache_Refresh(t *testing.T) {
	cache := NewCache(50*time.Millisecond, time.Minute)

	cache.Set("key", "value")
	time.Sleep(30 * time.Millisecond)

	value, ok := cache.Refresh("key")
	assert.True(t, ok)
	assert.Equal(t, "value", value)

	time.Sleep(30 * time.Millisecond)
	_, ok = cache.Get("key")
	assert.True(t, ok, "refresh should restart the expiration")

	_, ok = cache.Refresh("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Add(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	assert.NoError(t, cache.Add("key", "first"))
	assert.Error(t, cache.Add("key", "second"))

	value, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "first", value)
}
