package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"resort/config"
	"resort/infras/otel/mocks"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/dto"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func newRedisCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.Prefix = "resort:"

	return cache.NewRedisCache(client, cfg, mocks.NewOtel()), mr
}

func TestBuildCacheKeyJoinsParts(t *testing.T) {
	assert.Equal(t, "hotel:list:abc", shared.BuildCacheKey("hotel", "list", "abc"))
	assert.Equal(t, "", shared.BuildCacheKey())
}

func TestHashQuery(t *testing.T) {
	filter := func(value string) dto.FilterGroup {
		return dto.FilterGroup{
			Filters: []any{dto.Filter{Field: "name", Value: value, Operator: dto.FilterOperatorLike, Table: "hotels"}},
		}
	}

	params := dto.QueryParams{Page: 1, Limit: 10}

	assert.Equal(t, shared.HashQuery(params, filter("bay")), shared.HashQuery(params, filter("bay")))
	assert.NotEqual(t, shared.HashQuery(params, filter("bay")), shared.HashQuery(params, filter("sea")))
	assert.NotEqual(t, shared.HashQuery(params, filter("bay")), shared.HashQuery(dto.QueryParams{Page: 2, Limit: 10}, filter("bay")))
}

func TestInvalidateCaches(t *testing.T) {
	c, mr := newRedisCache(t)
	ctx := context.Background()

	shared.InvalidateCaches(ctx, c, "hotel", "policy:hotel:1", "hotel")

	hotel, err := mr.Get("resort:version:hotel")
	require.NoError(t, err)
	assert.Equal(t, "2", hotel)

	policy, err := mr.Get("resort:version:policy:hotel:1")
	require.NoError(t, err)
	assert.Equal(t, "1", policy)
}

func TestCacheRead(t *testing.T) {
	c, _ := newRedisCache(t)
	ctx := context.Background()

	loads := 0
	load := func(context.Context) (item, error) {
		loads++

		return item{Name: "Ocean View"}, nil
	}

	res, err := shared.CacheRead(ctx, c, 60, "hotel", []string{"get", "1"}, load)
	require.NoError(t, err)
	assert.Equal(t, "Ocean View", res.Name)

	require.Eventually(t, func() bool {
		var cached item

		return c.Get(ctx, "hotel:v0:get:1", &cached) == nil
	}, time.Second, 10*time.Millisecond)

	res, err = shared.CacheRead(ctx, c, 60, "hotel", []string{"get", "1"}, load)
	require.NoError(t, err)
	assert.Equal(t, "Ocean View", res.Name)
	assert.Equal(t, 1, loads)

	shared.InvalidateCaches(ctx, c, "hotel")

	_, err = shared.CacheRead(ctx, c, 60, "hotel", []string{"get", "1"}, load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestCacheRead_LoadError(t *testing.T) {
	c, mr := newRedisCache(t)

	_, err := shared.CacheRead(context.Background(), c, 60, "hotel", []string{"get", "9"}, func(context.Context) (item, error) {
		return item{}, errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	time.Sleep(10 * time.Millisecond)

	assert.Empty(t, mr.Keys())
}

func TestCacheRead_StoreDown(t *testing.T) {
	c, mr := newRedisCache(t)
	mr.Close()

	res, err := shared.CacheRead(context.Background(), c, 60, "hotel", []string{"get", "1"}, func(context.Context) (item, error) {
		return item{Name: "fallback"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fallback", res.Name)
}
