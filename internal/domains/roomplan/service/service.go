package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	roomModel "resort/internal/domains/room/model"
	roomRepo "resort/internal/domains/room/repository"
	"resort/internal/domains/roomplan/model"
	"resort/internal/domains/roomplan/model/dto"
	"resort/internal/domains/roomplan/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomPlan    = "get"
	cacheGetAllRoomPlan = "list"
)

type RoomPlan interface {
	Create(ctx context.Context, roomID string, req dto.CreateRoomPlanRequest) error
	GetAll(ctx context.Context, roomID string, req gDto.QueryParams) (dto.GetRoomPlansResponse, error)
	Get(ctx context.Context, id string) (dto.RoomPlanResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomPlanRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.RoomPlan
	rooms roomRepo.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RoomPlan, rooms roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomPlan {
	return &serviceImpl{
		repo:  repo,
		rooms: rooms,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, roomID string, req dto.CreateRoomPlanRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomplan.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.rooms.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(roomID, user)); err != nil {
		log.Error().Err(err).Msg("failed to create room plan")

		return fmt.Errorf("failed to create room plan: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, roomID string, req gDto.QueryParams) (res dto.GetRoomPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomplan.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(roomID, model.FieldRoomID, model.TableName)
	parts := []string{cacheGetAllRoomPlan, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetRoomPlansResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count room plans")

			return dto.GetRoomPlansResponse{}, fmt.Errorf("failed to count room plans: %w", err)
		}

		plans, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get room plans")

			return dto.GetRoomPlansResponse{}, fmt.Errorf("failed to get room plans: %w", err)
		}

		return dto.FromModels(plans, total, req.Limit), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomPlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomplan.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{cacheGetRoomPlan, id}, func(ctx context.Context) (dto.RoomPlanResponse, error) {
		var res dto.RoomPlanResponse

		plan, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room plan")

			return res, fmt.Errorf("failed to get room plan: %w", err)
		}

		if plan.ID == constant.Empty {
			return res, failure.NotFound("room plan not found") // nolint:wrapcheck
		}

		res.FromModel(plan)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomPlanRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomplan.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room plan existence")

		return fmt.Errorf("failed to check room plan existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room plan not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update room plan")

		return fmt.Errorf("failed to update room plan: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".roomplan.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room plan existence")

		return fmt.Errorf("failed to check room plan existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room plan not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete room plan")

		return fmt.Errorf("failed to delete room plan: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}
