package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	amenityModel "resort/internal/domains/amenity/model"
	amenityService "resort/internal/domains/amenity/service"
	"resort/internal/domains/hotel/model"
	"resort/internal/domains/hotel/model/dto"
	"resort/internal/domains/hotel/repository"
	mediaService "resort/internal/domains/media/service"
	policyModel "resort/internal/domains/policy/model"
	policyService "resort/internal/domains/policy/service"
	roomModel "resort/internal/domains/room/model"
	roomRepo "resort/internal/domains/room/repository"
	roomService "resort/internal/domains/room/service"
	safetyModel "resort/internal/domains/safetyfeature/model"
	safetyService "resort/internal/domains/safetyfeature/service"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheGetHotel       = "get"
	cacheGetHotelBySlug = "slug"
	cacheGetAllHotel    = "list"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	GetBySlug(ctx context.Context, slug string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) error
	Delete(ctx context.Context, id string) error
	Detail(ctx context.Context, id string) (dto.DetailResponse, error)
}

type serviceImpl struct {
	repo      repository.Hotel
	rooms     roomService.Room
	policies  policyService.Policy
	amenities amenityService.Amenity
	safety    safetyService.SafetyFeature
	media     mediaService.Media
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Hotel,
	rooms roomService.Room,
	policies policyService.Policy,
	amenities amenityService.Amenity,
	safety safetyService.SafetyFeature,
	media mediaService.Media,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Hotel {
	return &serviceImpl{
		repo:      repo,
		rooms:     rooms,
		policies:  policies,
		amenities: amenities,
		safety:    safety,
		media:     media,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hotel := req.ToModel(user)
	if hotel.Slug == constant.Empty {
		return res, failure.BadRequestFromString("name must contain letters or digits")
	}

	if err = s.repo.Insert(ctx, hotel); err != nil {
		log.Error().Err(err).Str("slug", hotel.Slug).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parts := []string{cacheGetAllHotel, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetHotelsResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count hotels")

			return dto.GetHotelsResponse{}, fmt.Errorf("failed to count hotels: %w", err)
		}

		hotels, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get hotels")

			return dto.GetHotelsResponse{}, fmt.Errorf("failed to get hotels: %w", err)
		}

		return dto.FromModels(hotels, total, req.Limit), nil
	})
}

func (s *serviceImpl) find(ctx context.Context, field, value string) (model.Hotel, error) {
	hotel, err := s.repo.Get(ctx, shared.FilterByID(value, field, model.TableName))
	if err != nil {
		log.Error().Err(err).Str(field, value).Msg("failed to get hotel")

		return hotel, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return hotel, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	return hotel, nil
}

func (s *serviceImpl) cachedFind(ctx context.Context, part, field, value string) (dto.HotelResponse, error) {
	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{part, value}, func(ctx context.Context) (dto.HotelResponse, error) {
		var res dto.HotelResponse

		hotel, err := s.find(ctx, field, value)
		if err != nil {
			return res, err
		}

		res.FromModel(hotel)

		return res, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedFind(ctx, cacheGetHotel, model.FieldID, id)
}

func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.cachedFind(ctx, cacheGetHotelBySlug, model.FieldSlug, slug)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.find(ctx, model.FieldID, id)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return fmt.Errorf("failed to update hotel: %w", err)
	}

	if req.Image != constant.Empty && req.Image != current.Image {
		s.media.DeleteLater(ctx, current.Image)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

// Delete removes the hotel with its rooms, plans and collections. A hotel
// with bookings cannot be deleted.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotel, err := s.find(ctx, model.FieldID, id)
	if err != nil {
		return err
	}

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{}, roomRepo.HotelFilter(id, false))
	if err != nil {
		return fmt.Errorf("failed to get hotel rooms: %w", err)
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel")

		return fmt.Errorf("failed to delete hotel: %w", err)
	}

	images := []string{hotel.Image}
	for _, room := range rooms.Items {
		images = append(images, room.Image)
	}

	s.media.DeleteLater(ctx, images...)

	shared.InvalidateCaches(ctx, s.cache,
		model.EntityName,
		roomModel.EntityName,
		policyModel.Namespace(constant.OwnerTypeHotel, id),
		amenityModel.HotelNamespace(id),
		safetyModel.HotelNamespace(id),
	)

	return nil
}

// Detail composes the hotel with its active rooms, policies, amenities and
// safety features. Every part is read through its own cache.
func (s *serviceImpl) Detail(ctx context.Context, id string) (res dto.DetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Detail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if res.HotelResponse, err = s.Get(ctx, id); err != nil {
		return res, err
	}

	roomFilter := roomRepo.HotelFilter(id, true)
	roomParams := gDto.QueryParams{SortBy: roomModel.TableName + "." + roomModel.FieldPrice, SortDir: gDto.SortDirAsc}

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		rooms, err := s.rooms.GetAll(gctx, roomParams, roomFilter)
		res.Rooms = rooms.Items

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		res.Policies, err = s.policies.List(gctx, constant.OwnerTypeHotel, id)

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		res.Amenities, err = s.amenities.ListHotel(gctx, id)

		return err //nolint:wrapcheck
	})

	group.Go(func() (err error) {
		res.SafetyFeatures, err = s.safety.ListHotel(gctx, id)

		return err //nolint:wrapcheck
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Str("hotel", id).Msg("failed to get hotel detail")

		return res, fmt.Errorf("failed to get hotel detail: %w", err)
	}

	return res, nil
}
