package cache

import (
	"net/http"

	"resort/infras/otel"
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramNamespace = "namespace"

type Handler struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cache cache.RedisCache, otel otel.Otel) Handler {
	return Handler{
		cache: cache,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cache", func(routerGroup chi.Router) {
		routerGroup.Delete("/", handler.ClearCache)
		routerGroup.Delete("/{namespace}", handler.BumpNamespace)
	})
}

// BumpNamespace invalidates every cached read of a namespace.
// @Summary Invalidate a cache namespace
// @Tags Cache
// @Produce json
// @Param namespace path string true "Cache namespace, e.g. hotel or availability:room:<id>"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cache/{namespace} [delete]
// @Security BearerAuth
func (handler *Handler) BumpNamespace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BumpNamespace")
	defer scope.End()

	namespace := chi.URLParam(r, paramNamespace)
	if namespace == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("namespace is required"))

		return
	}

	if err := cache.Bump(ctx, handler.cache, namespace); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("namespace", namespace).Msg("failed to bump cache namespace")

		response.WithError(w, failure.InternalError(err))

		return
	}

	response.WithMessage(w, http.StatusOK, "Cache namespace invalidated")
}

// ClearCache drops every key under the application prefix.
// @Summary Clear the cache
// @Tags Cache
// @Produce json
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/cache [delete]
// @Security BearerAuth
func (handler *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearCache")
	defer scope.End()

	if err := handler.cache.Clear(ctx, "*"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear cache")

		response.WithError(w, failure.InternalError(err))

		return
	}

	response.WithMessage(w, http.StatusOK, "Cache cleared")
}
