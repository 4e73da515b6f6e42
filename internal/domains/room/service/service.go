package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"resort/config"
	"resort/infras/otel"
	bookingModel "resort/internal/domains/booking/model"
	bookingRepo "resort/internal/domains/booking/repository"
	mediaModel "resort/internal/domains/media/model"
	mediaService "resort/internal/domains/media/service"
	"resort/internal/domains/room/model"
	"resort/internal/domains/room/model/dto"
	"resort/internal/domains/room/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom      = "get"
	cacheGetAllRoom   = "list"
	cacheAvailability = "stay"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	Availability(ctx context.Context, id string, req dto.StayRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo     repository.Room
	bookings bookingRepo.Booking
	media    mediaService.Media
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Room, bookings bookingRepo.Booking, media mediaService.Media, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		media:    media,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	imageURL := constant.Empty
	if req.Image != nil {
		imageURL, err = s.media.Store(ctx, mediaModel.DirectoryRoom, req.ImageFile, req.Image)
		if err != nil {
			return fmt.Errorf("failed to upload room image: %w", err)
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURL)); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		s.media.DeleteLater(ctx, imageURL)

		return fmt.Errorf("failed to create room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parts := []string{cacheGetAllRoom, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetRoomsResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count rooms")

			return dto.GetRoomsResponse{}, fmt.Errorf("failed to count rooms: %w", err)
		}

		rooms, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return dto.GetRoomsResponse{}, fmt.Errorf("failed to get rooms: %w", err)
		}

		return dto.FromModels(rooms, total, req.Limit), nil
	})
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{cacheGetRoom, id}, func(ctx context.Context) (dto.RoomResponse, error) {
		var res dto.RoomResponse

		room, err := s.get(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(room)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)

	imageURL := constant.Empty
	if req.Image != nil {
		imageURL, err = s.media.Store(ctx, mediaModel.DirectoryRoom, req.ImageFile, req.Image)
		if err != nil {
			return fmt.Errorf("failed to upload room image: %w", err)
		}

		fields[model.FieldImage] = imageURL
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		s.media.DeleteLater(ctx, imageURL)

		return fmt.Errorf("failed to update room: %w", err)
	}

	if imageURL != constant.Empty {
		s.media.DeleteLater(ctx, current.Image)
	}

	shared.InvalidateCaches(ctx, s.cache, model.EntityName, bookingModel.AvailabilityNamespace(id))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.media.DeleteLater(ctx, room.Image)

	shared.InvalidateCaches(ctx, s.cache, model.EntityName, bookingModel.AvailabilityNamespace(id))

	return nil
}

// Availability is the room quantity minus the rooms held by non-cancelled
// bookings overlapping the stay.
func (s *serviceImpl) Availability(ctx context.Context, id string, req dto.StayRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = req.Dates(); err != nil {
		return res, err
	}

	parts := []string{cacheAvailability, req.CheckIn, req.CheckOut}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, bookingModel.AvailabilityNamespace(id), parts, func(ctx context.Context) (dto.AvailabilityResponse, error) {
		var res dto.AvailabilityResponse

		room, err := s.get(ctx, id)
		if err != nil {
			return res, err
		}

		booked, err := s.bookings.Sum(ctx, bookingModel.FieldQuantity, bookingRepo.OverlapFilter(id, req.CheckIn, req.CheckOut))
		if err != nil {
			log.Error().Err(err).Str("room", id).Msg("failed to sum booked rooms")

			return res, fmt.Errorf("failed to check availability: %w", err)
		}

		res.FromModel(room, req, booked)

		return res, nil
	})
}
