package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/itinerary/model"
	"resort/internal/domains/itinerary/model/dto"
	"resort/internal/domains/itinerary/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/collection"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/ordering"

	"github.com/rs/zerolog/log"
)

const cacheListItinerary = "list"

type Itinerary interface {
	List(ctx context.Context, activityID string) (dto.ItineraryResponse, error)
	Sync(ctx context.Context, activityID string, req dto.SyncItineraryRequest) error
	Reorder(ctx context.Context, activityID string, req gDto.ReorderRequest) error
	Update(ctx context.Context, req dto.UpdateStepRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Itinerary
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	manager *collection.Manager[model.Itinerary, dto.StepPayload]
}

func New(repo repository.Itinerary, db postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Itinerary {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		manager: collection.NewManager[model.Itinerary, dto.StepPayload](repo, dto.StepCodec{}, db, model.TableName, model.FieldID),
	}
}

func activityFilter(activityID string) gDto.FilterGroup {
	return shared.FilterByID(activityID, model.FieldActivityID, model.TableName)
}

func (s *serviceImpl) List(ctx context.Context, activityID string) (res dto.ItineraryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".itinerary.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.Namespace(activityID), []string{cacheListItinerary},
		func(ctx context.Context) (dto.ItineraryResponse, error) {
			var res dto.ItineraryResponse

			params := gDto.QueryParams{SortBy: model.TableName + "." + constant.FieldSortOrder, SortDir: gDto.SortDirAsc}

			steps, err := s.repo.GetAll(ctx, params, activityFilter(activityID))
			if err != nil {
				log.Error().Err(err).Str("activity", activityID).Msg("failed to get itinerary")

				return res, fmt.Errorf("failed to get itinerary: %w", err)
			}

			if err := res.FromModels(steps); err != nil {
				return res, fmt.Errorf("failed to build itinerary: %w", err)
			}

			return res, nil
		})
}

func (s *serviceImpl) Sync(ctx context.Context, activityID string, req dto.SyncItineraryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".itinerary.Sync")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	plan, err := s.manager.Sync(ctx, activityFilter(activityID), req.Items, func(item ordering.DisplayItem[dto.StepPayload]) model.Itinerary {
		return dto.ToModel(item, activityID, user)
	})
	if err != nil {
		log.Error().Err(err).Str("activity", activityID).Msg("failed to save itinerary")

		return fmt.Errorf("failed to save itinerary: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"itinerary.inserted": len(plan.Inserts),
		"itinerary.updated":  len(plan.Updates),
		"itinerary.deleted":  len(plan.Deletes),
	})

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(activityID))

	return nil
}

func (s *serviceImpl) Reorder(ctx context.Context, activityID string, req gDto.ReorderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".itinerary.Reorder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.manager.Reorder(ctx, activityFilter(activityID), req.IDs); err != nil {
		log.Error().Err(err).Str("activity", activityID).Msg("failed to reorder itinerary")

		return fmt.Errorf("failed to reorder itinerary: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(activityID))

	return nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Itinerary, error) {
	step, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get itinerary step")

		return step, fmt.Errorf("failed to get itinerary step: %w", err)
	}

	if step.ID == constant.Empty {
		return step, failure.NotFound("itinerary step not found") // nolint:wrapcheck
	}

	return step, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStepRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".itinerary.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	step, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update itinerary step")

		return fmt.Errorf("failed to update itinerary step: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(step.ActivityID))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".itinerary.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	step, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.manager.Delete(ctx, activityFilter(step.ActivityID), id); err != nil {
		log.Error().Err(err).Msg("failed to delete itinerary step")

		return fmt.Errorf("failed to delete itinerary step: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.Namespace(step.ActivityID))

	return nil
}
