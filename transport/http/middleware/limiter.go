package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"resort/infras/metrics"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/transport/http/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
	localKeyPeer      = "peer"

	limiterBackendRedis = "redis"
	limiterBackendLocal = "local"

	maxLocalLimiters = 10000
)

type localLimiter struct {
	limiter *rate.Limiter
	seen    time.Time
}

// RateLimit counts requests per client in a fixed window kept in Redis.
// When Redis cannot be reached a per-process token bucket with the same
// budget takes over.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			clientKey := shared.BuildCacheKey(a.getClientIP(r), a.getUA(r))
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientKey)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				peerKey := shared.BuildCacheKey(localKeyPeer, remoteHost(r))
				if !a.allowLocal(clientKey, peerKey, maxReqs, windowSecs) {
					metrics.ObserveRateLimited(limiterBackendLocal)
					response.WithRequestLimitExceeded(w)

					return
				}

				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				metrics.ObserveRateLimited(limiterBackendRedis)
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				log.Warn().Err(err).Msg("failed to save rate limit counter")
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

// allowLocal spends one token of the bucket of clientKey. Buckets idle for a
// whole window are swept, and once maxLocalLimiters buckets are live new
// clients share the bucket of their peer address.
func (a *appMiddleware) allowLocal(clientKey, peerKey string, maxReqs, windowSecs int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	window := time.Duration(max(windowSecs, 1)) * time.Second

	if now.Sub(a.lastSweep) >= window {
		a.sweepLocals(now, window)
		a.lastSweep = now
	}

	local, ok := a.locals[clientKey]
	if !ok && len(a.locals) >= maxLocalLimiters {
		clientKey = peerKey
		local, ok = a.locals[clientKey]
	}

	if !ok {
		every := window / time.Duration(max(maxReqs, 1))
		local = &localLimiter{limiter: rate.NewLimiter(rate.Every(every), max(maxReqs, 1))}
		a.locals[clientKey] = local
	}

	local.seen = now

	return local.limiter.AllowN(now, 1)
}

// sweepLocals drops the buckets not used for a window. Such a bucket has
// refilled to its burst.
func (a *appMiddleware) sweepLocals(now time.Time, window time.Duration) {
	for key, local := range a.locals {
		if now.Sub(local.seen) >= window {
			delete(a.locals, key)
		}
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP picks the first X-Forwarded-For address, then X-Real-IP,
// then the host of RemoteAddr.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return remoteHost(r)
}

// remoteHost is the host of the connection peer, ignoring proxy headers.
func remoteHost(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}

	return r.RemoteAddr
}
