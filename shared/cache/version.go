package cache

import (
	"context"
	"fmt"
	"strings"

	"resort/infras/metrics"
	"resort/shared/constant"

	"github.com/rs/zerolog/log"
)

// VersionKey is where the counter of a namespace lives.
func VersionKey(namespace string) string {
	return constant.CacheVersionPrefix + constant.CacheKeySeparator + namespace
}

// CurrentVersion reads the counter of a namespace. A missing counter, or a
// store that cannot be reached, reads as version 0.
func CurrentVersion(ctx context.Context, c RedisCache, namespace string) int64 {
	var raw string

	if err := c.Get(ctx, VersionKey(namespace), &raw); err != nil {
		return 0
	}

	var version int64
	if _, err := fmt.Sscan(raw, &version); err != nil {
		log.Warn().Err(err).Str("namespace", namespace).Msg("malformed cache version, using 0")

		return 0
	}

	return version
}

// Bump moves a namespace to its next version so that every key built
// from the previous version is never read again.
func Bump(ctx context.Context, c RedisCache, namespace string) error {
	version, err := c.Increment(ctx, VersionKey(namespace))
	if err != nil {
		return fmt.Errorf("failed to bump cache namespace %s: %w", namespace, err)
	}

	metrics.ObserveCache(metrics.CacheEventBump)
	log.Debug().Str("namespace", namespace).Int64("version", version).Msg("cache namespace bumped")

	return nil
}

// VersionedKey composes <namespace>:v<version>:<parts...>.
func VersionedKey(namespace string, version int64, parts ...string) string {
	key := fmt.Sprintf("%s%sv%d", namespace, constant.CacheKeySeparator, version)
	if len(parts) == 0 {
		return key
	}

	return key + constant.CacheKeySeparator + strings.Join(parts, constant.CacheKeySeparator)
}

// Key resolves the current version of a namespace and builds the read key.
func Key(ctx context.Context, c RedisCache, namespace string, parts ...string) string {
	return VersionedKey(namespace, CurrentVersion(ctx, c, namespace), parts...)
}

// Namespace joins namespace segments, e.g. Namespace("policy", "hotel", id).
func Namespace(segments ...string) string {
	return strings.Join(segments, constant.CacheKeySeparator)
}
