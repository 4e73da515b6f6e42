package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"resort/config"
	"resort/infras/kafka"
	"resort/infras/metrics"
	"resort/infras/otel"
	"resort/infras/postgres"
	activityService "resort/internal/domains/activity/service"
	packageService "resort/internal/domains/activitypackage/service"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/repository"
	roomDto "resort/internal/domains/room/model/dto"
	roomService "resort/internal/domains/room/service"
	roomPlanService "resort/internal/domains/roomplan/service"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "get"
	cacheGetAllBooking = "list"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Booking
	db         postgres.Transactor
	rooms      roomService.Room
	plans      roomPlanService.RoomPlan
	packages   packageService.ActivityPackage
	activities activityService.Activity
	kafka      kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	db postgres.Transactor,
	rooms roomService.Room,
	plans roomPlanService.RoomPlan,
	packages packageService.ActivityPackage,
	activities activityService.Activity,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		db:         db,
		rooms:      rooms,
		plans:      plans,
		packages:   packages,
		activities: activities,
		kafka:      kafka,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// priceRoom checks the room, the plan and the free rooms for the stay, fills
// in the stay bounds with the total price and returns the room stock.
func (s *serviceImpl) priceRoom(ctx context.Context, req dto.CreateBookingRequest, booking *model.Booking) (int, error) {
	stay := roomDto.StayRequest{CheckIn: req.CheckIn, CheckOut: req.CheckOut}

	checkIn, checkOut, err := stay.Dates()
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	if err := dto.NotInPast(checkIn); err != nil {
		return 0, err //nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	if !room.Active {
		return 0, failure.BadRequestFromString("room is not available for booking")
	}

	if req.Guests > room.Capacity*req.Rooms() {
		return 0, failure.BadRequestFromString(fmt.Sprintf("%d room(s) hold at most %d guests", req.Rooms(), room.Capacity*req.Rooms()))
	}

	nightly := room.Price

	if req.RoomPlanID != constant.Empty {
		plan, err := s.plans.Get(ctx, req.RoomPlanID)
		if err != nil {
			return 0, err //nolint:wrapcheck
		}

		if plan.RoomID != room.ID {
			return 0, failure.BadRequestFromString("room plan does not belong to the room")
		}

		if !plan.Active {
			return 0, failure.BadRequestFromString("room plan is not available for booking")
		}

		nightly = plan.Price
	}

	availability, err := s.rooms.Availability(ctx, room.ID, stay)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	if availability.Available < req.Rooms() {
		return 0, failure.Conflict(fmt.Sprintf("only %d room(s) left for the selected dates", availability.Available))
	}

	booking.HotelID = &room.HotelID
	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	booking.Quantity = req.Rooms()
	booking.TotalPrice = nightly * float64(booking.Nights()*req.Rooms())

	return room.Quantity, nil
}

// reserve inserts a room booking while holding the room lock, after
// recounting the overlapping bookings on the primary.
func (s *serviceImpl) reserve(ctx context.Context, booking model.Booking, stock int) error {
	return s.db.WithTx(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if err := s.repo.LockTx(ctx, tx, *booking.RoomID); err != nil {
			return err //nolint:wrapcheck
		}

		overlap := repository.OverlapFilter(*booking.RoomID, timezone.FormatDate(booking.CheckIn), timezone.FormatDate(booking.CheckOut))

		booked, err := s.repo.SumTx(ctx, tx, model.FieldQuantity, overlap)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if left := stock - booked; left < booking.Quantity {
			return failure.Conflict(fmt.Sprintf("only %d room(s) left for the selected dates", max(left, 0)))
		}

		return s.repo.InsertTx(ctx, tx, booking) //nolint:wrapcheck
	})
}

// priceActivity checks the package and its activity. Packages are priced
// per guest for a single day.
func (s *serviceImpl) priceActivity(ctx context.Context, req dto.CreateBookingRequest, booking *model.Booking) error {
	day, err := timezone.ParseDate(req.CheckIn)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err := dto.NotInPast(day); err != nil {
		return err //nolint:wrapcheck
	}

	pkg, err := s.packages.Get(ctx, req.ActivityPackageID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	activity, err := s.activities.Get(ctx, pkg.ActivityID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !activity.Active {
		return failure.BadRequestFromString("activity is not available for booking")
	}

	if pkg.MaxGuests > 0 && req.Guests > pkg.MaxGuests {
		return failure.BadRequestFromString(fmt.Sprintf("package allows at most %d guests", pkg.MaxGuests))
	}

	booking.ActivityID = &activity.ID
	booking.CheckIn = day
	booking.CheckOut = day
	booking.Quantity = 1
	booking.TotalPrice = pkg.Price * float64(req.Guests)

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.CheckTarget(); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking := req.ToModel(user, time.Time{}, time.Time{}, 0)

	var stock int

	if req.Type == model.TypeRoom {
		stock, err = s.priceRoom(ctx, req, &booking)
	} else {
		err = s.priceActivity(ctx, req, &booking)
	}

	if err != nil {
		return res, fmt.Errorf("failed to validate booking: %w", err)
	}

	if req.Type == model.TypeRoom {
		err = s.reserve(ctx, booking, stock)
	} else {
		err = s.repo.Insert(ctx, booking)
	}

	if err != nil {
		if failure.GetCode(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("failed to create booking")
		}

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"booking.type":  booking.Type,
		"booking.total": booking.TotalPrice,
	})

	s.invalidate(ctx, booking)
	s.publish(ctx, booking, model.EventCreated)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	parts := []string{cacheGetAllBooking, shared.HashQuery(req, filter)}

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, parts, func(ctx context.Context) (dto.GetBookingsResponse, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count bookings")

			return dto.GetBookingsResponse{}, fmt.Errorf("failed to count bookings: %w", err)
		}

		bookings, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings")

			return dto.GetBookingsResponse{}, fmt.Errorf("failed to get bookings: %w", err)
		}

		return dto.FromModels(bookings, total, req.Limit), nil
	})
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return shared.CacheRead(ctx, s.cache, s.cfg.Cache.TTL, model.EntityName, []string{cacheGetBooking, id}, func(ctx context.Context) (dto.BookingResponse, error) {
		var res dto.BookingResponse

		booking, err := s.get(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(booking)

		return res, nil
	})
}

// Update edits the guest details and moves the status along
// pending → confirmed → cancelled.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	if req.Status != constant.Empty && !model.CanTransition(booking.Status, req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, req.Status))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	event := model.EventUpdated
	if req.Status != constant.Empty && req.Status != booking.Status {
		booking.Status = req.Status

		if req.Status == model.StatusCancelled {
			event = model.EventCancelled
		}
	}

	s.invalidate(ctx, booking)
	s.publish(ctx, booking, event)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.Update(ctx, dto.UpdateBookingRequest{Status: model.StatusCancelled}, id)
}

func (s *serviceImpl) invalidate(ctx context.Context, booking model.Booking) {
	namespaces := []string{model.EntityName}
	if booking.RoomID != nil {
		namespaces = append(namespaces, model.AvailabilityNamespace(*booking.RoomID))
	}

	shared.InvalidateCaches(ctx, s.cache, namespaces...)
}

// publish sends the booking event when Kafka is enabled. Failures are logged
// and counted only.
func (s *serviceImpl) publish(ctx context.Context, booking model.Booking, eventType string) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := booking.Event(eventType, timezone.Format(timezone.Now(), time.RFC3339))

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Booking, kafka.Message{Key: booking.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Str("event", eventType).Msg("failed to publish booking event")
	}

	metrics.ObserveBookingEvent(eventType, "publish", err)
}
