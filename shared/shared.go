package shared

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/timezone"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

// ConvertStringToBool parses an optional query flag. Empty or malformed
// input yields nil so the filter is skipped.
func ConvertStringToBool(value string) *bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring malformed bool")

		return nil
	}

	return &parsed
}

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Debug().Err(err).Str("value", value).Msg("ignoring malformed int")

		return 0, err //nolint:wrapcheck
	}

	return res, nil
}

// TransformFields turns a partial update request into the column map handed
// to the repository. Zero fields are left out, pointers are dereferenced so
// an explicit false or 0 is still written, and the audit columns are stamped.
func TransformFields(data any, username string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	fields := make(map[string]any, val.NumField()+2)

	for i := range val.NumField() {
		column := typ.Field(i).Tag.Get("db")
		if column == "" || column == "-" {
			continue
		}

		field := val.Field(i)
		if field.IsZero() {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		fields[column] = field.Interface()
	}

	fields[constant.FieldModifiedAt] = timezone.Now()
	fields[constant.FieldModifiedBy] = username

	return fields
}

// Slugify lowercases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	var b strings.Builder

	dash := false

	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) && r < unicode.MaxASCII, unicode.IsDigit(r) && r < unicode.MaxASCII:
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}

			b.WriteRune(r)

			dash = false
		default:
			dash = true
		}
	}

	return b.String()
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins key parts with the cache separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, constant.CacheKeySeparator)
}

func HashQuery(params dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{params, filter})
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal query for cache key")

		where, _ := filter.GetWhereClause()
		raw = []byte(where)
	}

	return strconv.FormatUint(xxhash.Sum64(raw), 16)
}

// InvalidateCaches bumps every namespace. Failures are logged only.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, namespaces ...string) {
	for _, namespace := range namespaces {
		if err := cache.Bump(ctx, c, namespace); err != nil {
			log.Error().Err(err).Str("namespace", namespace).Msg("failed to invalidate cache namespace")
		}
	}
}

// CacheRead is the read-through helper every service uses: the namespace
// version is resolved, the cache is tried, load runs on a miss and the
// result is stored in the background.
func CacheRead[T any](ctx context.Context, c cache.RedisCache, ttl int, namespace string, parts []string, load func(ctx context.Context) (T, error)) (T, error) {
	key := cache.Key(ctx, c, namespace, parts...)

	var res T
	if err := c.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return res, nil
	}

	res, err := load(ctx)
	if err != nil {
		return res, err
	}

	go func() {
		c2 := context.WithoutCancel(ctx)

		if err := c.Save(c2, key, res, ttl); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()

	return res, nil
}
