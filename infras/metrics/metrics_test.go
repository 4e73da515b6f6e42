package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resort/infras/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCache(t *testing.T) {
	before := testutil.ToFloat64(metrics.CacheEvents.WithLabelValues(metrics.CacheEventBump))

	metrics.ObserveCache(metrics.CacheEventBump)
	metrics.ObserveCache(metrics.CacheEventBump)

	after := testutil.ToFloat64(metrics.CacheEvents.WithLabelValues(metrics.CacheEventBump))
	assert.Equal(t, before+2, after)
}

func TestObserveBookingEvent(t *testing.T) {
	okBefore := testutil.ToFloat64(metrics.BookingEvents.WithLabelValues("booking.created", "publish", "ok"))
	errBefore := testutil.ToFloat64(metrics.BookingEvents.WithLabelValues("booking.created", "publish", "error"))

	metrics.ObserveBookingEvent("booking.created", "publish", nil)
	metrics.ObserveBookingEvent("booking.created", "publish", errors.New("broker down"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.BookingEvents.WithLabelValues("booking.created", "publish", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.BookingEvents.WithLabelValues("booking.created", "publish", "error")))
}

func TestHandler(t *testing.T) {
	metrics.ObserveHTTP("/v1/hotels", http.MethodGet, http.StatusOK, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "resort_http_requests_total"))
}
