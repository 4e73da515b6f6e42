package blog

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/blog/model"
	"resort/internal/domains/blog/model/dto"
	"resort/internal/domains/blog/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamSlug = "slug"
	queryTag         = "tag"
)

type Handler struct {
	service service.Blog
	otel    otel.Otel
}

func New(service service.Blog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/blogs", handler.CreateBlog)
	router.Get("/blogs", handler.GetBlogs)
	router.Get("/blogs/slug/{slug}", handler.GetBlogBySlug)
	router.Get("/blogs/{id}", handler.GetBlogByID)
	router.Patch("/blogs/{id}", handler.UpdateBlog)
	router.Delete("/blogs/{id}", handler.DeleteBlog)
}

// CreateBlog creates a new blog.
// @Summary Create a blog
// @Description The slug is derived from the title when omitted
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogRequest true "Create Blog Request"
// @Success 201 {object} dto.BlogResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs [post]
// @Security BearerAuth
func (handler *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlog")
	defer scope.End()

	req := dto.CreateBlogRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blog")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBlogs lists blog articles.
// @Summary Get all blogs
// @Tags Blog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param published query boolean false "Filter by published status"
// @Param tag query []string false "Filter by tags, every tag must match" collectionFormat(multi)
// @Success 200 {object} dto.GetBlogsResponse
// @Failure 500 {object} response.Error
// @Router /v1/blogs [get]
func (handler *Handler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Restrict(model.TableName, model.SortableFields...)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    query.Get(model.FieldTitle),
				Table:    model.TableName,
			},
		},
	}

	if published := shared.ConvertStringToBool(query.Get(model.FieldPublished)); published != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPublished,
			Operator: gDto.FilterOperatorEq,
			Value:    *published,
			Table:    model.TableName,
		})
	}

	if tags := query[queryTag]; len(tags) > 0 {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTags,
			Operator: gDto.FilterOperatorContains,
			Value:    tags,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blogs")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBlogByID returns one blog.
// @Summary Get a blog by ID
// @Tags Blog
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} dto.BlogResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/{id} [get]
func (handler *Handler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetBlogBySlug returns one blog by its slug.
// @Summary Get a blog by slug
// @Tags Blog
// @Produce json
// @Param slug path string true "Blog slug"
// @Success 200 {object} dto.BlogResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/slug/{slug} [get]
func (handler *Handler) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogBySlug")
	defer scope.End()

	res, err := handler.service.GetBySlug(ctx, chi.URLParam(r, requestParamSlug))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateBlog updates a blog.
// @Summary Update a blog
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog ID"
// @Param request body dto.UpdateBlogRequest true "Update Blog Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBlog")
	defer scope.End()

	req := dto.UpdateBlogRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update blog")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blog updated successfully")
}

// DeleteBlog deletes a blog and its cover image.
// @Summary Delete a blog
// @Tags Blog
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/blogs/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlog")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blog")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Blog deleted successfully")
}
