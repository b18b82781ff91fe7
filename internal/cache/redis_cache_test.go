package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCache(rdb), mr
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRedisCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "careers", Count: 76}, time.Minute))

	var got payload
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{Name: "careers", Count: 76}, got)
}

func TestRedisCache_MissOnAbsentKey(t *testing.T) {
	c, _ := newTestCache(t)

	var got payload
	hit, err := c.GetJSON(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_CorruptEntryBecomesMiss(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("k", "{not json"))

	var got payload
	hit, err := c.GetJSON(context.Background(), "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	// and the bad entry is gone
	assert.False(t, mr.Exists("k"))
}

func TestRedisCache_EntryExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", payload{Name: "majors"}, time.Second))
	mr.FastForward(2 * time.Second)

	var got payload
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_DelNoKeysIsNoop(t *testing.T) {
	c, _ := newTestCache(t)
	assert.NoError(t, c.Del(context.Background()))
}
