package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	blogMocks "resort/internal/domains/blog/mocks"
	"resort/internal/domains/blog/model"
	"resort/internal/domains/blog/model/dto"
	"resort/internal/domains/blog/service"
	mediaMocks "resort/internal/domains/media/service/mocks"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

type fixture struct {
	repo  *blogMocks.MockBlog
	media *mediaMocks.MockMedia
	cache *cacheMocks.MockRedisCache
	svc   service.Blog
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  blogMocks.NewMockBlog(ctrl),
		media: mediaMocks.NewMockMedia(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.media, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBlogService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateBlogRequest
		setup    func(f fixture)
		wantSlug string
		wantCode int
	}{
		{
			name: "slug from title",
			req:  dto.CreateBlogRequest{Title: "Diving at Gili Trawangan", Content: "..."},
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Increment(gomock.Any(), "version:blog").Return(int64(1), nil)
			},
			wantSlug: "diving-at-gili-trawangan",
		},
		{
			name:     "title without letters",
			req:      dto.CreateBlogRequest{Title: "???", Content: "..."},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate slug",
			req:  dto.CreateBlogRequest{Title: "Diving", Content: "..."},
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Conflict("blog already exists"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Create(context.WithValue(context.Background(), constant.ContextKeyUserID, "editor"), tt.req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, res.Slug)
			assert.Equal(t, "editor", res.CreatedBy)
		})
	}
}

func TestBlogService_GetAll(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Blog{{ID: "b1", Title: "Diving"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Diving", res.Items[0].Title)
}

func TestBlogService_GetBySlug(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Blog, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "blogs.slug")
			assert.Equal(t, "diving", args["slug"])

			return model.Blog{ID: "b1", Slug: "diving"}, nil
		})

	res, err := f.svc.GetBySlug(context.Background(), "diving")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, "b1", res.ID)
}

func TestBlogService_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{}, nil)

	_, err := f.svc.Get(context.Background(), "b9")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBlogService_Update(t *testing.T) {
	published := true
	earlier := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		current         model.Blog
		req             dto.UpdateBlogRequest
		wantPublishedAt bool
		wantCleanup     bool
	}{
		{
			name:            "first publish stamps published_at",
			current:         model.Blog{ID: "b1"},
			req:             dto.UpdateBlogRequest{Published: &published},
			wantPublishedAt: true,
		},
		{
			name:    "republish keeps published_at",
			current: model.Blog{ID: "b1", PublishedAt: &earlier},
			req:     dto.UpdateBlogRequest{Published: &published},
		},
		{
			name:        "new cover removes the old one",
			current:     model.Blog{ID: "b1", CoverImage: "https://cdn/old.png"},
			req:         dto.UpdateBlogRequest{CoverImage: "https://cdn/new.png"},
			wantCleanup: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.current, nil)
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					_, ok := fields[model.FieldPublishedAt]
					assert.Equal(t, tt.wantPublishedAt, ok)

					return nil
				})
			f.cache.EXPECT().Increment(gomock.Any(), "version:blog").Return(int64(2), nil)

			if tt.wantCleanup {
				f.media.EXPECT().DeleteLater(gomock.Any(), "https://cdn/old.png")
			}

			assert.NoError(t, f.svc.Update(context.Background(), tt.req, "b1"))
		})
	}
}

func TestBlogService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{}, nil)

		err := f.svc.Delete(context.Background(), "b9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success cleans the cover", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Blog{ID: "b1", CoverImage: "https://cdn/b1.png"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.media.EXPECT().DeleteLater(gomock.Any(), "https://cdn/b1.png")
		f.cache.EXPECT().Increment(gomock.Any(), "version:blog").Return(int64(3), nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "b1"))
	})
}
