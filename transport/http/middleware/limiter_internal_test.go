package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resort/config"
	"resort/infras/otel/mocks"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type clock struct {
	at time.Time
}

func (c *clock) now() time.Time { return c.at }

func (c *clock) advance(d time.Duration) { c.at = c.at.Add(d) }

func newLocalLimiter(t *testing.T, maxReqs, windowSecs int) (*appMiddleware, *clock, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down")).AnyTimes()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = maxReqs
	cfg.App.RateLimiter.WindowSeconds = windowSecs

	c := &clock{at: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)}

	mw, _ := NewAppMiddleware(mocks.NewOtel(), cfg, redis).(*appMiddleware)
	mw.now = c.now

	handler := mw.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	return mw, c, handler
}

func request(handler http.Handler, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/v1/hotels", nil)
	req.RemoteAddr = "10.0.0.7:41234"
	req.Header.Set(constant.RequestHeaderForwardedFor, forwardedFor)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec.Code
}

func TestRateLimit_LocalFallbackBudget(t *testing.T) {
	_, _, handler := newLocalLimiter(t, 2, 60)

	assert.Equal(t, http.StatusNoContent, request(handler, "203.0.113.9"))
	assert.Equal(t, http.StatusNoContent, request(handler, "203.0.113.9"))
	assert.Equal(t, http.StatusTooManyRequests, request(handler, "203.0.113.9"))
	assert.Equal(t, http.StatusNoContent, request(handler, "203.0.113.10"))
}

func TestRateLimit_LocalFallbackSweepsIdleClients(t *testing.T) {
	mw, c, handler := newLocalLimiter(t, 5, 60)

	for i := range 100 {
		request(handler, fmt.Sprintf("198.51.100.%d", i))
	}

	assert.Len(t, mw.locals, 100)

	c.advance(61 * time.Second)
	assert.Equal(t, http.StatusNoContent, request(handler, "203.0.113.9"))

	assert.Len(t, mw.locals, 1)
}

func TestRateLimit_LocalFallbackCapsSpoofedClients(t *testing.T) {
	mw, _, handler := newLocalLimiter(t, 1, 60)

	for i := range maxLocalLimiters + 500 {
		request(handler, fmt.Sprintf("spoofed-%d", i))
	}

	assert.Len(t, mw.locals, maxLocalLimiters+1)
	assert.Contains(t, mw.locals, "peer:10.0.0.7")
	assert.Equal(t, http.StatusTooManyRequests, request(handler, "spoofed-again"))
}
