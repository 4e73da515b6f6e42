package roomplan

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/roomplan/model"
	"resort/internal/domains/roomplan/model/dto"
	"resort/internal/domains/roomplan/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RoomPlan
	otel    otel.Otel
}

func New(service service.RoomPlan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/rooms/{id}/plans", handler.CreateRoomPlan)
	router.Get("/rooms/{id}/plans", handler.GetRoomPlans)

	router.Route("/room-plans", func(routerGroup chi.Router) {
		routerGroup.Get("/{id}", handler.GetRoomPlanByID)
		routerGroup.Patch("/{id}", handler.UpdateRoomPlan)
		routerGroup.Delete("/{id}", handler.DeleteRoomPlan)
	})
}

// CreateRoomPlan adds a rate plan to a room.
// @Summary Create a room plan
// @Tags RoomPlan
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.CreateRoomPlanRequest true "Create Room Plan Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/plans [post]
// @Security BearerAuth
func (handler *Handler) CreateRoomPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoomPlan")
	defer scope.End()

	req := dto.CreateRoomPlanRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Room plan created successfully")
}

// GetRoomPlans lists the rate plans of a room.
// @Summary Get room plans
// @Tags RoomPlan
// @Produce json
// @Param id path string true "Room ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetRoomPlansResponse
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/plans [get]
func (handler *Handler) GetRoomPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomPlans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Restrict(model.TableName, model.SortableFields...)

	res, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamID), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRoomPlanByID returns one rate plan.
// @Summary Get a room plan by ID
// @Tags RoomPlan
// @Produce json
// @Param id path string true "Room plan ID"
// @Success 200 {object} dto.RoomPlanResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-plans/{id} [get]
func (handler *Handler) GetRoomPlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomPlanByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateRoomPlan updates a rate plan.
// @Summary Update a room plan
// @Tags RoomPlan
// @Accept json
// @Produce json
// @Param id path string true "Room plan ID"
// @Param request body dto.UpdateRoomPlanRequest true "Update Room Plan Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-plans/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoomPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoomPlan")
	defer scope.End()

	req := dto.UpdateRoomPlanRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room plan updated successfully")
}

// DeleteRoomPlan removes a rate plan.
// @Summary Delete a room plan
// @Tags RoomPlan
// @Produce json
// @Param id path string true "Room plan ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/room-plans/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoomPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoomPlan")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Room plan deleted successfully")
}
