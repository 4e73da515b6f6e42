package activitypackage

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/activitypackage/model/dto"
	"resort/internal/domains/activitypackage/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ActivityPackage
	otel    otel.Otel
}

func New(service service.ActivityPackage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/activities/{id}/packages", handler.ListActivityPackages)
	router.Put("/activities/{id}/packages", handler.SyncActivityPackages)
	router.Patch("/activities/{id}/packages/order", handler.ReorderActivityPackages)

	router.Get("/activity-packages/{id}", handler.GetActivityPackageByID)
	router.Patch("/activity-packages/{id}", handler.UpdateActivityPackage)
	router.Delete("/activity-packages/{id}", handler.DeleteActivityPackage)
}

// ListActivityPackages returns the activity packages of an activity in display order.
// @Summary List activity packages
// @Tags ActivityPackage
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.PackageListResponse
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id}/packages [get]
func (handler *Handler) ListActivityPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListActivityPackages")
	defer scope.End()

	res, err := handler.service.List(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list activity packages")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SyncActivityPackages replaces the activity packages of an activity with the submitted list.
// @Summary Save activity packages
// @Description Items tagged "existing" keep their id, items tagged "new" are created, missing items are deleted and the list order is persisted.
// @Tags ActivityPackage
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body dto.SyncPackagesRequest true "Activity packages in display order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id}/packages [put]
// @Security BearerAuth
func (handler *Handler) SyncActivityPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncActivityPackages")
	defer scope.End()

	req := dto.SyncPackagesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Sync(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save activity packages")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Activity packages saved successfully")
}

// ReorderActivityPackages persists a new order for the activity packages of an activity.
// @Summary Reorder activity packages
// @Tags ActivityPackage
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body gDto.ReorderRequest true "Ids in order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id}/packages/order [patch]
// @Security BearerAuth
func (handler *Handler) ReorderActivityPackages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderActivityPackages")
	defer scope.End()

	req := gDto.ReorderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reorder(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder activity packages")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Activity packages reordered successfully")
}

// GetActivityPackageByID returns one package with its price.
// @Summary Get an activity package by ID
// @Tags ActivityPackage
// @Produce json
// @Param id path string true "Activity package ID"
// @Success 200 {object} dto.PackageResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activity-packages/{id} [get]
func (handler *Handler) GetActivityPackageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivityPackageByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateActivityPackage edits one activity package.
// @Summary Update an activity package
// @Tags ActivityPackage
// @Accept json
// @Produce json
// @Param id path string true "Activity package ID"
// @Param request body dto.UpdatePackageRequest true "Update Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activity-packages/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateActivityPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateActivityPackage")
	defer scope.End()

	req := dto.UpdatePackageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update activity package")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Activity package updated successfully")
}

// DeleteActivityPackage deletes one activity package and closes the gap in the order.
// @Summary Delete an activity package
// @Tags ActivityPackage
// @Produce json
// @Param id path string true "Activity package ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activity-packages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteActivityPackage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteActivityPackage")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete activity package")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Activity package deleted successfully")
}
