package dto_test

import (
	"testing"
	"time"

	"resort/internal/domains/blog/model"
	"resort/internal/domains/blog/model/dto"
	gModel "resort/shared/model"
	"resort/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBlogRequest_ToModel(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.CreateBlogRequest
		wantSlug      string
		wantPublished bool
	}{
		{
			name:     "draft with slug from title",
			req:      dto.CreateBlogRequest{Title: "5 Hidden Beaches in Lombok", Content: "..."},
			wantSlug: "5-hidden-beaches-in-lombok",
		},
		{
			name:          "published with explicit slug",
			req:           dto.CreateBlogRequest{Title: "Sunset dinner", Slug: "sunset", Content: "...", Published: true},
			wantSlug:      "sunset",
			wantPublished: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blog := tt.req.ToModel("editor")

			assert.NotEmpty(t, blog.ID)
			assert.Equal(t, tt.wantSlug, blog.Slug)
			assert.Equal(t, "editor", blog.CreatedBy)
			assert.Equal(t, tt.wantPublished, blog.Published)
			assert.Equal(t, tt.wantPublished, blog.PublishedAt != nil)
		})
	}
}

func TestBlogResponse_FromModel(t *testing.T) {
	publishedAt := time.Date(2026, 6, 1, 9, 30, 0, 0, timezone.Location())

	var res dto.BlogResponse
	res.FromModel(model.Blog{
		ID:          "b1",
		Title:       "Sunset dinner",
		Published:   true,
		PublishedAt: &publishedAt,
		Metadata:    gModel.NewMetadata("editor"),
	})

	assert.Equal(t, "b1", res.ID)
	assert.Equal(t, []string{}, res.Tags)
	assert.NotEmpty(t, res.PublishedAt)

	var draft dto.BlogResponse
	draft.FromModel(model.Blog{ID: "b2", Tags: []string{"food"}})

	assert.Empty(t, draft.PublishedAt)
	assert.Equal(t, []string{"food"}, draft.Tags)
}

func TestFromModels(t *testing.T) {
	res := dto.FromModels([]model.Blog{{ID: "b1"}, {ID: "b2"}}, 12, 5)

	require.Len(t, res.Items, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
