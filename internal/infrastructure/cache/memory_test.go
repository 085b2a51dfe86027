package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sangkips/autocare-api/internal/application/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestMemoryCache_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(clock.Now)
	payload := &analytics.Payload{}

	require.NoError(t, c.Set(ctx, "k", payload, 90*time.Second))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Same(t, payload, got)

	clock.Advance(89 * time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.True(t, ok)

	// expiry is exclusive: at exactly createdAt+ttl the entry is gone
	clock.Advance(time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_SetReplacesWholeEntry(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(clock.Now)
	first, second := &analytics.Payload{}, &analytics.Payload{}

	require.NoError(t, c.Set(ctx, "k", first, time.Second))
	clock.Advance(2 * time.Second)
	require.NoError(t, c.Set(ctx, "k", second, time.Minute))

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemoryCache(nil)

	got, ok, err := c.Get(context.Background(), "missing")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(nil)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := "k"
			if i%2 == 0 {
				_ = c.Set(ctx, key, &analytics.Payload{}, time.Minute)
				return
			}
			_, _, _ = c.Get(ctx, key)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}
