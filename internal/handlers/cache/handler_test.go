package cache_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resort/config"
	"resort/infras/otel/mocks"
	handler "resort/internal/handlers/cache"
	"resort/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (http.Handler, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.Prefix = "resort:"

	h := handler.New(cache.NewRedisCache(client, cfg, mocks.NewOtel()), mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", h.Router)

	return router, mr
}

func TestHandler_BumpNamespace(t *testing.T) {
	router, mr := newRouter(t)

	for range 2 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/cache/hotel", nil))

		require.Equal(t, http.StatusOK, rec.Code)
	}

	version, err := mr.Get("resort:version:hotel")
	require.NoError(t, err)
	assert.Equal(t, "2", version)
}

func TestHandler_ClearCache(t *testing.T) {
	router, mr := newRouter(t)

	require.NoError(t, mr.Set("resort:hotel:v0:get:1", `{}`))
	require.NoError(t, mr.Set("resort:version:hotel", "3"))
	require.NoError(t, mr.Set("other:key", "kept"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/cache", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, mr.Exists("resort:hotel:v0:get:1"))
	assert.False(t, mr.Exists("resort:version:hotel"))
	assert.True(t, mr.Exists("other:key"))
}

func TestHandler_StoreUnavailable(t *testing.T) {
	router, mr := newRouter(t)
	mr.Close()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/cache/hotel", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
