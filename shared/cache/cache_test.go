package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/config"
	"resort/infras/otel/mocks"
	"resort/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
}

func newCache(t *testing.T, prefix string) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.Prefix = prefix

	return cache.NewRedisCache(client, cfg, mocks.NewOtel()), mr
}

func TestRedisCache_SaveGet(t *testing.T) {
	c, mr := newCache(t, "resort:")
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "policy:v0:list", payload{Name: "No smoking", Order: 2}, 60))
	assert.True(t, mr.Exists("resort:policy:v0:list"))

	var got payload
	require.NoError(t, c.Get(ctx, "policy:v0:list", &got))
	assert.Equal(t, payload{Name: "No smoking", Order: 2}, got)

	mr.FastForward(61 * time.Second)

	err := c.Get(ctx, "policy:v0:list", &got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_GetString(t *testing.T) {
	c, _ := newCache(t, "")
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "greeting", "hello", 60))

	var got string
	require.NoError(t, c.Get(ctx, "greeting", &got))
	assert.Equal(t, "hello", got)
}

func TestRedisCache_Delete(t *testing.T) {
	c, mr := newCache(t, "")
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "hotel:v1:get:abc", payload{Name: "x"}, 60))
	require.NoError(t, c.Delete(ctx, "hotel:v1:get:abc"))
	assert.False(t, mr.Exists("hotel:v1:get:abc"))
}

func TestRedisCache_Clear(t *testing.T) {
	c, mr := newCache(t, "app:")
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "hotel:v0:a", "1", 60))
	require.NoError(t, c.Save(ctx, "hotel:v0:b", "2", 60))
	require.NoError(t, c.Save(ctx, "room:v0:a", "3", 60))
	require.NoError(t, mr.Set("other:key", "keep"))

	require.NoError(t, c.Clear(ctx, "hotel:*"))

	assert.False(t, mr.Exists("app:hotel:v0:a"))
	assert.False(t, mr.Exists("app:hotel:v0:b"))
	assert.True(t, mr.Exists("app:room:v0:a"))

	require.NoError(t, c.Clear(ctx, "*"))

	assert.False(t, mr.Exists("app:room:v0:a"))
	assert.True(t, mr.Exists("other:key"))
}

func TestRedisCache_Increment(t *testing.T) {
	c, _ := newCache(t, "")
	ctx := context.Background()

	first, err := c.Increment(ctx, "counter")
	require.NoError(t, err)
	second, err := c.Increment(ctx, "counter")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestRedisCache_Unavailable(t *testing.T) {
	c, mr := newCache(t, "")
	ctx := context.Background()

	mr.Close()

	var got payload
	assert.Error(t, c.Get(ctx, "any", &got))
	assert.Error(t, c.Save(ctx, "any", got, 60))

	_, err := c.Increment(ctx, "any")
	assert.Error(t, err)
}
