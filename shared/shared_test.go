package shared_test

import (
	"testing"
	"time"

	"resort/shared"
	"resort/shared/constant"
	"resort/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "   ", want: nil},
		{input: "true", want: boolPtr(true)},
		{input: "1", want: boolPtr(true)},
		{input: " false ", want: boolPtr(false)},
		{input: "0", want: boolPtr(false)},
		{input: "yes", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	got, err := shared.ConvertStringToInt(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	_, err = shared.ConvertStringToInt("twelve")
	assert.Error(t, err)
}

type updateRequest struct {
	Name     string   `db:"name"`
	Capacity int      `db:"capacity"`
	Active   *bool    `db:"is_active"`
	Price    *float64 `db:"price"`
	Note     string
	Upload   string `db:"-"`
}

func TestTransformFields(t *testing.T) {
	price := 0.0

	tests := []struct {
		name string
		req  any
		want map[string]any
	}{
		{
			name: "skips zero values and untagged fields",
			req:  updateRequest{Name: "Garden Villa", Note: "ignored", Upload: "ignored"},
			want: map[string]any{"name": "Garden Villa"},
		},
		{
			name: "dereferences explicit zero pointers",
			req:  updateRequest{Active: boolPtr(false), Price: &price},
			want: map[string]any{"is_active": false, "price": 0.0},
		},
		{
			name: "accepts a pointer to the request",
			req:  &updateRequest{Capacity: 4},
			want: map[string]any{"capacity": 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			got := shared.TransformFields(tt.req, "editor-1")

			assert.Equal(t, "editor-1", got[constant.FieldModifiedBy])

			modifiedAt, ok := got[constant.FieldModifiedAt].(time.Time)
			require.True(t, ok)
			assert.False(t, modifiedAt.Before(before.Truncate(time.Second)))

			delete(got, constant.FieldModifiedBy)
			delete(got, constant.FieldModifiedAt)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("room-1", "id", "rooms")

	require.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	require.True(t, ok)
	assert.Equal(t, dto.Filter{Field: "id", Value: "room-1", Operator: dto.FilterOperatorEq, Table: "rooms"}, filter)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Bali Beach Resort":      "bali-beach-resort",
		"  Ubud -- Jungle Spa  ": "ubud-jungle-spa",
		"Villa #7 (Sea View)":    "villa-7-sea-view",
		"Café Olé":               "caf-ol",
		"":                       "",
	}

	for input, want := range tests {
		assert.Equal(t, want, shared.Slugify(input), input)
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "rate"+constant.CacheKeySeparator+"10.0.0.1", shared.BuildCacheKey("rate", "10.0.0.1"))
}

func TestHashQueryIsStable(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10}
	filter := shared.FilterByID("room-1", "id", "rooms")

	assert.Equal(t, shared.HashQuery(params, filter), shared.HashQuery(params, filter))
	assert.NotEqual(t, shared.HashQuery(params, filter), shared.HashQuery(dto.QueryParams{Page: 3, Limit: 10}, filter))
}

func boolPtr(b bool) *bool {
	return &b
}
