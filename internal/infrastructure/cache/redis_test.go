package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/autocare-api/internal/application/analytics"
	"github.com/sangkips/autocare-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the two commands the cache uses; any other call panics on the nil embed
type fakeRedis struct {
	redis.Cmdable
	store  map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.store[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.store[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	c := NewRedisCache(rdb, "")
	avg := 4.5
	payload := &analytics.Payload{
		Range: analytics.RangeEcho{From: "2024-04-01", To: "2024-04-07", GroupBy: enum.GranularityWeek},
		KPIs:  analytics.KPIs{TotalIncome: 120.5, TotalProfit: 100.25},
		Top: analytics.TopBlock{Employees: []analytics.EmployeeEntry{
			{Name: "Omar", AvgRating: &avg, RatingCount: 2},
		}},
	}

	require.NoError(t, c.Set(ctx, "2024-04-01|2024-04-07|week", payload, 90*time.Second))
	assert.Equal(t, 90*time.Second, rdb.ttls[DefaultRedisPrefix+"2024-04-01|2024-04-07|week"])

	got, ok, err := c.Get(ctx, "2024-04-01|2024-04-07|week")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, payload.Range, got.Range)
	assert.Equal(t, payload.KPIs, got.KPIs)
	require.Len(t, got.Top.Employees, 1)
	assert.Equal(t, 4.5, *got.Top.Employees[0].AvgRating)
}

func TestRedisCache_MissAndErrors(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	c := NewRedisCache(rdb, "test:")

	_, ok, err := c.Get(ctx, "absent")
	assert.NoError(t, err)
	assert.False(t, ok)

	rdb.store["test:broken"] = []byte("{not json")
	_, ok, err = c.Get(ctx, "broken")
	assert.Error(t, err)
	assert.False(t, ok)

	rdb.getErr = errors.New("connection refused")
	_, ok, err = c.Get(ctx, "absent")
	assert.ErrorIs(t, err, rdb.getErr)
	assert.False(t, ok)
}
