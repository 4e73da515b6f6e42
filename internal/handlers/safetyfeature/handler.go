package safetyfeature

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/safetyfeature/model"
	"resort/internal/domains/safetyfeature/model/dto"
	"resort/internal/domains/safetyfeature/service"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.SafetyFeature
	otel    otel.Otel
}

func New(service service.SafetyFeature, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/safety-features", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSafetyFeature)
		routerGroup.Get("/", handler.GetSafetyFeatures)
		routerGroup.Get("/{id}", handler.GetSafetyFeatureByID)
		routerGroup.Patch("/{id}", handler.UpdateSafetyFeature)
		routerGroup.Delete("/{id}", handler.DeleteSafetyFeature)
	})

	router.Get("/hotels/{id}/safety-features", handler.ListHotelSafetyFeatures)
	router.Put("/hotels/{id}/safety-features", handler.SyncHotelSafetyFeatures)
	router.Patch("/hotels/{id}/safety-features/order", handler.ReorderHotelSafetyFeatures)
}

// CreateSafetyFeature adds a safety feature to the catalog.
// @Summary Create a safety feature
// @Tags SafetyFeature
// @Accept json
// @Produce json
// @Param request body dto.CreateSafetyFeatureRequest true "Create SafetyFeature Request"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/safety-features [post]
// @Security BearerAuth
func (handler *Handler) CreateSafetyFeature(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSafetyFeature")
	defer scope.End()

	req := dto.CreateSafetyFeatureRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create safety feature")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "SafetyFeature created successfully")
}

// GetSafetyFeatures lists the safety feature catalog.
// @Summary Get all safety features
// @Tags SafetyFeature
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} dto.GetSafetyFeaturesResponse
// @Failure 500 {object} response.Error
// @Router /v1/safety-features [get]
func (handler *Handler) GetSafetyFeatures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSafetyFeatures")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.Restrict(model.TableName, model.SortableFields...)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get safety features")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetSafetyFeatureByID returns one safety feature of the catalog.
// @Summary Get a safety feature by ID
// @Tags SafetyFeature
// @Produce json
// @Param id path string true "SafetyFeature ID"
// @Success 200 {object} dto.SafetyFeatureResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/safety-features/{id} [get]
func (handler *Handler) GetSafetyFeatureByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSafetyFeatureByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get safety feature")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateSafetyFeature updates one safety feature of the catalog.
// @Summary Update a safety feature
// @Tags SafetyFeature
// @Accept json
// @Produce json
// @Param id path string true "SafetyFeature ID"
// @Param request body dto.UpdateSafetyFeatureRequest true "Update SafetyFeature Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/safety-features/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSafetyFeature(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSafetyFeature")
	defer scope.End()

	req := dto.UpdateSafetyFeatureRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update safety feature")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "SafetyFeature updated successfully")
}

// DeleteSafetyFeature removes a safety feature that no hotel links to.
// @Summary Delete a safety feature
// @Tags SafetyFeature
// @Produce json
// @Param id path string true "SafetyFeature ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/safety-features/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSafetyFeature(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSafetyFeature")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete safety feature")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("SafetyFeature deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "SafetyFeature deleted successfully")
}

// ListHotelSafetyFeatures returns the safety features of a hotel in display order.
// @Summary List hotel safety features
// @Tags SafetyFeature
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelSafetyFeaturesResponse
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/safety-features [get]
func (handler *Handler) ListHotelSafetyFeatures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListHotelSafetyFeatures")
	defer scope.End()

	res, err := handler.service.ListHotel(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list hotel safety features")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SyncHotelSafetyFeatures replaces the safety feature list of a hotel.
// @Summary Save hotel safety features
// @Tags SafetyFeature
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.SyncHotelSafetyFeaturesRequest true "SafetyFeatures in display order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/safety-features [put]
// @Security BearerAuth
func (handler *Handler) SyncHotelSafetyFeatures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncHotelSafetyFeatures")
	defer scope.End()

	req := dto.SyncHotelSafetyFeaturesRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SyncHotel(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save hotel safety features")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "SafetyFeatures saved successfully")
}

// ReorderHotelSafetyFeatures persists a new order for the safety features of a hotel.
// @Summary Reorder hotel safety features
// @Tags SafetyFeature
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body gDto.ReorderRequest true "Link ids in order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/safety-features/order [patch]
// @Security BearerAuth
func (handler *Handler) ReorderHotelSafetyFeatures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderHotelSafetyFeatures")
	defer scope.End()

	req := gDto.ReorderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ReorderHotel(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reorder hotel safety features")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "SafetyFeatures reordered successfully")
}
