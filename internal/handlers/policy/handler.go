package policy

import (
	"net/http"

	"resort/infras/otel"
	"resort/internal/domains/policy/model/dto"
	"resort/internal/domains/policy/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Policy
	otel    otel.Otel
}

func New(service service.Policy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/hotels/{id}/policies", handler.ListPolicies(constant.OwnerTypeHotel))
	router.Put("/hotels/{id}/policies", handler.SyncPolicies(constant.OwnerTypeHotel))
	router.Patch("/hotels/{id}/policies/order", handler.ReorderPolicies(constant.OwnerTypeHotel))

	router.Get("/activities/{id}/policies", handler.ListPolicies(constant.OwnerTypeActivity))
	router.Put("/activities/{id}/policies", handler.SyncPolicies(constant.OwnerTypeActivity))
	router.Patch("/activities/{id}/policies/order", handler.ReorderPolicies(constant.OwnerTypeActivity))

	router.Patch("/policies/{id}", handler.UpdatePolicy)
	router.Delete("/policies/{id}", handler.DeletePolicy)
}

// ListPolicies returns the ordered policies of a hotel or an activity.
// @Summary List policies
// @Description Ordered include/exclude rules of the owner, with the display items used by the policy manager.
// @Tags Policy
// @Produce json
// @Param id path string true "Hotel or activity ID"
// @Success 200 {object} dto.PolicyListResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/policies [get]
// @Router /v1/activities/{id}/policies [get]
func (handler *Handler) ListPolicies(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPolicies")
		defer scope.End()

		ownerID := chi.URLParam(r, constant.RequestParamID)

		res, err := handler.service.List(ctx, ownerType, ownerID)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("owner", ownerType).Msg("failed to list policies")

			response.WithError(w, err)

			return
		}

		response.WithJSON(w, http.StatusOK, res)
	}
}

// SyncPolicies replaces the policies of the owner with the submitted list.
// @Summary Save policies
// @Description Items tagged "existing" keep their id, items tagged "new" are created, missing items are deleted and the list order is persisted.
// @Tags Policy
// @Accept json
// @Produce json
// @Param id path string true "Hotel or activity ID"
// @Param request body dto.SyncPoliciesRequest true "Policies in display order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/policies [put]
// @Router /v1/activities/{id}/policies [put]
// @Security BearerAuth
func (handler *Handler) SyncPolicies(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SyncPolicies")
		defer scope.End()

		ownerID := chi.URLParam(r, constant.RequestParamID)

		req := dto.SyncPoliciesRequest{}
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}

		if err := handler.service.Sync(ctx, ownerType, ownerID, req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("owner", ownerID).Msg("failed to save policies")

			response.WithError(w, err)

			return
		}

		response.WithMessage(w, http.StatusOK, "Policies saved successfully")
	}
}

// ReorderPolicies persists a new order for the policies of the owner.
// @Summary Reorder policies
// @Description The ids must be exactly the persisted policy ids of the owner.
// @Tags Policy
// @Accept json
// @Produce json
// @Param id path string true "Hotel or activity ID"
// @Param request body gDto.ReorderRequest true "Policy ids in order"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/policies/order [patch]
// @Router /v1/activities/{id}/policies/order [patch]
// @Security BearerAuth
func (handler *Handler) ReorderPolicies(ownerType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReorderPolicies")
		defer scope.End()

		ownerID := chi.URLParam(r, constant.RequestParamID)

		req := gDto.ReorderRequest{}
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}

		if err := handler.service.Reorder(ctx, ownerType, ownerID, req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("owner", ownerID).Msg("failed to reorder policies")

			response.WithError(w, err)

			return
		}

		response.WithMessage(w, http.StatusOK, "Policies reordered successfully")
	}
}

// UpdatePolicy updates the text or kind of one policy.
// @Summary Update a policy
// @Tags Policy
// @Accept json
// @Produce json
// @Param id path string true "Policy ID"
// @Param request body dto.UpdatePolicyRequest true "Update Policy Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/policies/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePolicy")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePolicyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update policy")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Policy updated successfully")
}

// DeletePolicy deletes one policy and closes the gap in the order.
// @Summary Delete a policy
// @Tags Policy
// @Produce json
// @Param id path string true "Policy ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/policies/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePolicy")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete policy")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Policy deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Policy deleted successfully")
}
