package cache_test

import (
	"context"
	"testing"

	"resort/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionedKey(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		version   int64
		parts     []string
		expected  string
	}{
		{
			name:      "no parts",
			namespace: "hotel",
			version:   0,
			expected:  "hotel:v0",
		},
		{
			name:      "single part",
			namespace: "hotel",
			version:   3,
			parts:     []string{"get"},
			expected:  "hotel:v3:get",
		},
		{
			name:      "nested namespace with parts",
			namespace: "policy:hotel:42",
			version:   12,
			parts:     []string{"list", "all"},
			expected:  "policy:hotel:42:v12:list:all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cache.VersionedKey(tt.namespace, tt.version, tt.parts...))
		})
	}
}

func TestNamespace(t *testing.T) {
	assert.Equal(t, "policy:hotel:abc", cache.Namespace("policy", "hotel", "abc"))
	assert.Equal(t, "hotel", cache.Namespace("hotel"))
}

func TestCurrentVersion_MissingIsZero(t *testing.T) {
	c, _ := newCache(t, "")

	assert.Equal(t, int64(0), cache.CurrentVersion(context.Background(), c, "hotel"))
}

func TestCurrentVersion_UnavailableIsZero(t *testing.T) {
	c, mr := newCache(t, "")
	mr.Close()

	assert.Equal(t, int64(0), cache.CurrentVersion(context.Background(), c, "hotel"))
}

func TestCurrentVersion_MalformedIsZero(t *testing.T) {
	c, mr := newCache(t, "")
	require.NoError(t, mr.Set(cache.VersionKey("hotel"), "not-a-number"))

	assert.Equal(t, int64(0), cache.CurrentVersion(context.Background(), c, "hotel"))
}

func TestBump_ChangesSubsequentKeys(t *testing.T) {
	c, mr := newCache(t, "")
	ctx := context.Background()

	before := cache.Key(ctx, c, "policy:hotel:1", "list")
	assert.Equal(t, "policy:hotel:1:v0:list", before)

	require.NoError(t, cache.Bump(ctx, c, "policy:hotel:1"))
	require.NoError(t, cache.Bump(ctx, c, "policy:hotel:1"))

	after := cache.Key(ctx, c, "policy:hotel:1", "list")
	assert.Equal(t, "policy:hotel:1:v2:list", after)
	assert.NotEqual(t, before, after)

	stored, err := mr.Get("version:policy:hotel:1")
	require.NoError(t, err)
	assert.Equal(t, "2", stored)

	assert.Equal(t, "policy:hotel:2:v0:list", cache.Key(ctx, c, "policy:hotel:2", "list"))
}

func TestBump_StaleEntryNotRead(t *testing.T) {
	c, _ := newCache(t, "")
	ctx := context.Background()

	staleKey := cache.Key(ctx, c, "hotel", "get", "h1")
	require.NoError(t, c.Save(ctx, staleKey, payload{Name: "old"}, 60))

	require.NoError(t, cache.Bump(ctx, c, "hotel"))

	var got payload
	assert.Error(t, c.Get(ctx, cache.Key(ctx, c, "hotel", "get", "h1"), &got))
}

func TestBump_Unavailable(t *testing.T) {
	c, mr := newCache(t, "")
	mr.Close()

	assert.Error(t, cache.Bump(context.Background(), c, "hotel"))
}
