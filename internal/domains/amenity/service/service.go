package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/amenity/model"
	"resort/internal/domains/amenity/model/dto"
	"resort/internal/domains/amenity/repository"
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
	cacheGetAmenity  = "get"
	cacheListAmenity = "list"
)

type Amenity interface {
	Create(ctx context.Context, req dto.CreateAmenityRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAmenitiesResponse, error)
	Get(ctx context.Context, id string) (dto.AmenityResponse, error)
	Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) error
	Delete(ctx context.Context, id string) error

	ListHotel(ctx context.Context, hotelID string) (dto.HotelAmenitiesResponse, error)
	SyncHotel(ctx context.Context, hotelID string, req dto.SyncHotelAmenitiesRequest) error
	ReorderHotel(ctx context.Context, hotelID string, req gDto.ReorderRequest) error
}

type serviceImpl struct {
	repo    repository.Amenity
	links   repository.HotelAmenity
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	manager *collection.Manager[model.HotelAmenity, dto.HotelAmenityPayload]
}

func New(repo repository.Amenity, links repository.HotelAmenity, db postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Amenity {
	return &serviceImpl{
		repo:    repo,
		links:   links,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		manager: collection.NewManager[model.HotelAmenity, dto.HotelAmenityPayload](links, dto.HotelAmenityCodec{}, db, model.LinkTableName, model.LinkFieldID),
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAmenityRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create amenity")

		return fmt.Errorf("failed to create amenity: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parts := []string{cacheListAmenity, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetAmenitiesResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count amenities")

			return dto.GetAmenitiesResponse{}, fmt.Errorf("failed to count amenities: %w", err)
		}

		amenities, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get amenities")

			return dto.GetAmenitiesResponse{}, fmt.Errorf("failed to get amenities: %w", err)
		}

		return dto.FromModels(amenities, total, req.Limit), nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{cacheGetAmenity, id}, func(ctx context.Context) (dto.AmenityResponse, error) {
		var res dto.AmenityResponse

		amenity, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get amenity")

			return res, fmt.Errorf("failed to get amenity: %w", err)
		}

		if amenity.ID == constant.Empty {
			return res, failure.NotFound("amenity not found") // nolint:wrapcheck
		}

		res.FromModel(amenity)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check amenity existence")

		return fmt.Errorf("failed to check amenity existence: %w", err)
	}

	if !exist {
		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update amenity")

		return fmt.Errorf("failed to update amenity: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check amenity existence")

		return fmt.Errorf("failed to check amenity existence: %w", err)
	}

	if !exist {
		return failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete amenity")

		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func hotelFilter(hotelID string) gDto.FilterGroup {
	return shared.FilterByID(hotelID, model.LinkFieldHotelID, model.LinkTableName)
}

// ListHotel returns the amenities of a hotel in display order. The key
// carries the catalog version so renaming an amenity refreshes every hotel.
func (s *serviceImpl) ListHotel(ctx context.Context, hotelID string) (res dto.HotelAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.ListHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	catalog := fmt.Sprintf("catalog:v%d", cache.CurrentVersion(ctx, s.cache, model.EntityName))
	params := gDto.QueryParams{SortBy: model.LinkTableName + "." + constant.FieldSortOrder, SortDir: gDto.SortDirAsc}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.HotelNamespace(hotelID), []string{cacheListAmenity, catalog},
		func(ctx context.Context) (dto.HotelAmenitiesResponse, error) {
			var res dto.HotelAmenitiesResponse

			links, err := s.links.GetAll(ctx, params, hotelFilter(hotelID))
			if err != nil {
				log.Error().Err(err).Str("hotel", hotelID).Msg("failed to get hotel amenities")

				return res, fmt.Errorf("failed to get hotel amenities: %w", err)
			}

			if err := res.FromModels(links); err != nil {
				return res, fmt.Errorf("failed to build hotel amenities: %w", err)
			}

			return res, nil
		})
}

func (s *serviceImpl) SyncHotel(ctx context.Context, hotelID string, req dto.SyncHotelAmenitiesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.SyncHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	_, err = s.manager.Sync(ctx, hotelFilter(hotelID), req.Items, func(item ordering.DisplayItem[dto.HotelAmenityPayload]) model.HotelAmenity {
		return dto.ToLinkModel(item, hotelID, user)
	})
	if err != nil {
		log.Error().Err(err).Str("hotel", hotelID).Msg("failed to save hotel amenities")

		return fmt.Errorf("failed to save amenities: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.HotelNamespace(hotelID))

	return nil
}

func (s *serviceImpl) ReorderHotel(ctx context.Context, hotelID string, req gDto.ReorderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".amenity.ReorderHotel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.manager.Reorder(ctx, hotelFilter(hotelID), req.IDs); err != nil {
		log.Error().Err(err).Str("hotel", hotelID).Msg("failed to reorder hotel amenities")

		return fmt.Errorf("failed to reorder amenities: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.HotelNamespace(hotelID))

	return nil
}
