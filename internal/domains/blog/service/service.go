package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/blog/model"
	"resort/internal/domains/blog/model/dto"
	"resort/internal/domains/blog/repository"
	mediaService "resort/internal/domains/media/service"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBlog       = "get"
	cacheGetBlogBySlug = "slug"
	cacheGetAllBlog    = "list"
)

type Blog interface {
	Create(ctx context.Context, req dto.CreateBlogRequest) (dto.BlogResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlogsResponse, error)
	Get(ctx context.Context, id string) (dto.BlogResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.BlogResponse, error)
	Update(ctx context.Context, req dto.UpdateBlogRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Blog
	media mediaService.Media
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Blog, media mediaService.Media, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Blog {
	return &serviceImpl{
		repo:  repo,
		media: media,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlogRequest) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	blog := req.ToModel(user)
	if blog.Slug == constant.Empty {
		return res, failure.BadRequestFromString("title must contain letters or digits")
	}

	if err = s.repo.Insert(ctx, blog); err != nil {
		log.Error().Err(err).Str("slug", blog.Slug).Msg("failed to create blog")

		return res, fmt.Errorf("failed to create blog: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	res.FromModel(blog)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parts := []string{cacheGetAllBlog, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetBlogsResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count blogs")

			return dto.GetBlogsResponse{}, fmt.Errorf("failed to count blogs: %w", err)
		}

		blogs, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get blogs")

			return dto.GetBlogsResponse{}, fmt.Errorf("failed to get blogs: %w", err)
		}

		return dto.FromModels(blogs, total, req.Limit), nil
	})
}

func (s *serviceImpl) find(ctx context.Context, field, value string) (model.Blog, error) {
	blog, err := s.repo.Get(ctx, shared.FilterByID(value, field, model.TableName))
	if err != nil {
		log.Error().Err(err).Str(field, value).Msg("failed to get blog")

		return blog, fmt.Errorf("failed to get blog: %w", err)
	}

	if blog.ID == constant.Empty {
		return blog, failure.NotFound("blog not found") // nolint:wrapcheck
	}

	return blog, nil
}

func (s *serviceImpl) cachedFind(ctx context.Context, part, field, value string) (dto.BlogResponse, error) {
	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{part, value}, func(ctx context.Context) (dto.BlogResponse, error) {
		var res dto.BlogResponse

		blog, err := s.find(ctx, field, value)
		if err != nil {
			return res, err
		}

		res.FromModel(blog)

		return res, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedFind(ctx, cacheGetBlog, model.FieldID, id)
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.BlogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedFind(ctx, cacheGetBlogBySlug, model.FieldSlug, slug)
}

// Update stamps published_at the first time the article goes live.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBlogRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.find(ctx, model.FieldID, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(req, user)
	if req.Published != nil && *req.Published && current.PublishedAt == nil {
		fields[model.FieldPublishedAt] = timezone.Now()
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update blog")

		return fmt.Errorf("failed to update blog: %w", err)
	}

	if req.CoverImage != constant.Empty && req.CoverImage != current.CoverImage {
		s.media.DeleteLater(ctx, current.CoverImage)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blog.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	blog, err := s.find(ctx, model.FieldID, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete blog")

		return fmt.Errorf("failed to delete blog: %w", err)
	}

	s.media.DeleteLater(ctx, blog.CoverImage)

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}
