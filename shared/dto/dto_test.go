package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/model"
	"resort/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, dto.Metadata{
		CreatedAt:  createdAt.In(timezone.Location()).Format(constant.DateFormat),
		ModifiedAt: modifiedAt.In(timezone.Location()).Format(constant.DateFormat),
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}, metadata)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		want         dto.QueryParams
	}{
		{
			name:  "all parameters",
			query: "page=2&limit=20&sort_by=name&sort_dir=asc",
			want:  dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:         "defaults fill page and limit",
			query:        "sort_dir=DESC",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit, SortDir: dto.SortDirDesc},
		},
		{
			name:  "no defaults leaves zero values",
			query: "",
			want:  dto.QueryParams{},
		},
		{
			name:         "malformed values ignored",
			query:        "page=abc&limit=-5&sort_dir=sideways",
			withDefaults: true,
			want:         dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:  "limit capped",
			query: "limit=5000",
			want:  dto.QueryParams{Limit: constant.MaxValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(req, tt.withDefaults)

			assert.Equal(t, tt.want, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, dto.QueryParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 3}.Offset())
}

func TestQueryParams_Restrict(t *testing.T) {
	tests := []struct {
		name        string
		params      dto.QueryParams
		wantSortBy  string
		wantSortDir string
	}{
		{
			name:        "allowed column kept",
			params:      dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
			wantSortBy:  "hotels.name",
			wantSortDir: dto.SortDirAsc,
		},
		{
			name:        "unknown column falls back",
			params:      dto.QueryParams{SortBy: "name; DROP TABLE hotels", SortDir: dto.SortDirAsc},
			wantSortBy:  "hotels.created_at",
			wantSortDir: dto.SortDirAsc,
		},
		{
			name:        "empty uses defaults",
			params:      dto.QueryParams{},
			wantSortBy:  "hotels.created_at",
			wantSortDir: dto.SortDirDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.Restrict("hotels", "name", "star_rating")

			assert.Equal(t, tt.wantSortBy, params.SortBy)
			assert.Equal(t, tt.wantSortDir, params.SortDir)
		})
	}
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		total     int
		limit     int
		wantPages int
	}{
		{name: "empty", items: nil, total: 0, limit: 10, wantPages: 1},
		{name: "exact", items: []string{"a", "b"}, total: 20, limit: 10, wantPages: 2},
		{name: "remainder", items: []string{"a"}, total: 21, limit: 10, wantPages: 3},
		{name: "no limit", items: []string{"a"}, total: 5, limit: 0, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := dto.NewPage(tt.items, tt.total, tt.limit)

			require.NotNil(t, page.Items)
			assert.Equal(t, tt.wantPages, page.TotalPage)
			assert.Equal(t, tt.total, page.TotalData)
		})
	}
}
