package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/safetyfeature/model"
	"resort/internal/domains/safetyfeature/model/dto"
	"resort/internal/domains/safetyfeature/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/collection"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/ordering"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSafetyFeature  = "get"
	cacheListSafetyFeature = "list"
)

type SafetyFeature interface {
	Create(ctx context.Context, req dto.CreateSafetyFeatureRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSafetyFeaturesResponse, error)
	Get(ctx context.Context, id string) (dto.SafetyFeatureResponse, error)
	Update(ctx context.Context, req dto.UpdateSafetyFeatureRequest, id string) error
	Delete(ctx context.Context, id string) error

	ListHotel(ctx context.Context, hotelID string) (dto.HotelSafetyFeaturesResponse, error)
	SyncHotel(ctx context.Context, hotelID string, req dto.SyncHotelSafetyFeaturesRequest) error
	ReorderHotel(ctx context.Context, hotelID string, req gDto.ReorderRequest) error
}

type serviceImpl struct {
	repo    repository.SafetyFeature
	links   repository.HotelSafetyFeature
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	manager *collection.Manager[model.HotelSafetyFeature, dto.HotelSafetyFeaturePayload]
}

func New(repo repository.SafetyFeature, links repository.HotelSafetyFeature, db postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) SafetyFeature {
	return &serviceImpl{
		repo:    repo,
		links:   links,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		manager: collection.NewManager[model.HotelSafetyFeature, dto.HotelSafetyFeaturePayload](links, dto.HotelSafetyFeatureCodec{}, db, model.LinkTableName, model.LinkFieldID),
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSafetyFeatureRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create safety feature")

		return fmt.Errorf("failed to create safety feature: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSafetyFeaturesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parts := []string{cacheListSafetyFeature, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetSafetyFeaturesResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count safety features")

			return dto.GetSafetyFeaturesResponse{}, fmt.Errorf("failed to count safety features: %w", err)
		}

		features, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get safety features")

			return dto.GetSafetyFeaturesResponse{}, fmt.Errorf("failed to get safety features: %w", err)
		}

		return dto.FromModels(features, total, req.Limit), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SafetyFeatureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{cacheGetSafetyFeature, id}, func(ctx context.Context) (dto.SafetyFeatureResponse, error) {
		var res dto.SafetyFeatureResponse

		feature, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get safety feature")

			return res, fmt.Errorf("failed to get safety feature: %w", err)
		}

		if feature.ID == constant.Empty {
			return res, failure.NotFound("safety feature not found") // nolint:wrapcheck
		}

		res.FromModel(feature)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSafetyFeatureRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check safety feature existence")

		return fmt.Errorf("failed to check safety feature existence: %w", err)
	}

	if !exist {
		return failure.NotFound("safety feature not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update safety feature")

		return fmt.Errorf("failed to update safety feature: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check safety feature existence")

		return fmt.Errorf("failed to check safety feature existence: %w", err)
	}

	if !exist {
		return failure.NotFound("safety feature not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete safety feature")

		return fmt.Errorf("failed to delete safety feature: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func hotelFilter(hotelID string) gDto.FilterGroup {
	return shared.FilterByID(hotelID, model.LinkFieldHotelID, model.LinkTableName)
}

// ListHotel returns the safety features of a hotel in display order. The key
// carries the catalog version so renaming a safety feature refreshes every hotel.
func (s *serviceImpl) ListHotel(ctx context.Context, hotelID string) (res dto.HotelSafetyFeaturesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.ListHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog := fmt.Sprintf("catalog:v%d", cache.CurrentVersion(ctx, s.cache, model.EntityName))
	params := gDto.QueryParams{SortBy: model.LinkTableName + "." + constant.FieldSortOrder, SortDir: gDto.SortDirAsc}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.HotelNamespace(hotelID), []string{cacheListSafetyFeature, catalog},
		func(ctx context.Context) (dto.HotelSafetyFeaturesResponse, error) {
			var res dto.HotelSafetyFeaturesResponse

			links, err := s.links.GetAll(ctx, params, hotelFilter(hotelID))
			if err != nil {
				log.Error().Err(err).Str("hotel", hotelID).Msg("failed to get hotel safety features")

				return res, fmt.Errorf("failed to get hotel safety features: %w", err)
			}

			if err := res.FromModels(links); err != nil {
				return res, fmt.Errorf("failed to build hotel safety features: %w", err)
			}

			return res, nil
		})
}

func (s *serviceImpl) SyncHotel(ctx context.Context, hotelID string, req dto.SyncHotelSafetyFeaturesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.SyncHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	_, err = s.manager.Sync(ctx, hotelFilter(hotelID), req.Items, func(item ordering.DisplayItem[dto.HotelSafetyFeaturePayload]) model.HotelSafetyFeature {
		return dto.ToLinkModel(item, hotelID, user)
	})
	if err != nil {
		log.Error().Err(err).Str("hotel", hotelID).Msg("failed to save hotel safety features")

		return fmt.Errorf("failed to save safety features: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.HotelNamespace(hotelID))

	return nil
}

func (s *serviceImpl) ReorderHotel(ctx context.Context, hotelID string, req gDto.ReorderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".safetyfeature.ReorderHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.manager.Reorder(ctx, hotelFilter(hotelID), req.IDs); err != nil {
		log.Error().Err(err).Str("hotel", hotelID).Msg("failed to reorder hotel safety features")

		return fmt.Errorf("failed to reorder safety features: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.HotelNamespace(hotelID))

	return nil
}
