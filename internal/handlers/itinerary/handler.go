package itinerary

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/itinerary/model/dto"
	"resort/internal/domains/itinerary/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Itinerary
	otel    otel.Otel
}

func New(service service.Itinerary, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/activities/{id}/itinerary", handler.ListItinerary)
	router.Put("/activities/{id}/itinerary", handler.SyncItinerary)
	router.Patch("/activities/{id}/itinerary/order", handler.ReorderItinerary)

	router.Patch("/itinerary/{id}", handler.UpdateItineraryStep)
	router.Delete("/itinerary/{id}", handler.DeleteItineraryStep)
}

// ListItinerary returns the itinerary steps of an activity in display order.
// @Summary List itinerary steps
// @Tags Itinerary
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id}/itinerary [get]
func (handler *Handler) ListItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListItinerary")
	defer scope.End()

	res, err := handler.service.List(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list itinerary steps")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SyncItinerary replaces the itinerary steps of an activity with the submitted list.
// @Summary Save itinerary steps
// @Description Items tagged "existing" keep their id, items tagged "new" are created, missing items are deleted and the list order is persisted.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body dto.SyncItineraryRequest true "Itinerary in display order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id}/itinerary [put]
// @Security BearerAuth
func (handler *Handler) SyncItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncItinerary")
	defer scope.End()

	req := dto.SyncItineraryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Sync(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save itinerary steps")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Itinerary saved successfully")
}

// ReorderItinerary persists a new order for the itinerary steps of an activity.
// @Summary Reorder itinerary steps
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param request body gDto.ReorderRequest true "Ids in order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/activities/{id}/itinerary/order [patch]
// @Security BearerAuth
func (handler *Handler) ReorderItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderItinerary")
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
		log.Error().Err(err).Msg("failed to reorder itinerary steps")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Itinerary reordered successfully")
}

// UpdateItineraryStep edits one itinerary step.
// @Summary Update an itinerary step
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Itinerary step ID"
// @Param request body dto.UpdateStepRequest true "Update Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/itinerary/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItineraryStep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItineraryStep")
	defer scope.End()

	req := dto.UpdateStepRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update itinerary step")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Itinerary step updated successfully")
}

// DeleteItineraryStep deletes one itinerary step and closes the gap in the order.
// @Summary Delete an itinerary step
// @Tags Itinerary
// @Produce json
// @Param id path string true "Itinerary step ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/itinerary/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItineraryStep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItineraryStep")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete itinerary step")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Itinerary step deleted successfully")
}
