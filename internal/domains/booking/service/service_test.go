package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/kafka"
	kafkaMocks "resort/infras/kafka/mocks"
	"resort/infras/otel/mocks"
	dbMocks "resort/infras/postgres/mocks"
	activityDto "resort/internal/domains/activity/model/dto"
	activityMocks "resort/internal/domains/activity/service/mocks"
	packageDto "resort/internal/domains/activitypackage/model/dto"
	packageMocks "resort/internal/domains/activitypackage/service/mocks"
	bookingMocks "resort/internal/domains/booking/mocks"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/service"
	roomDto "resort/internal/domains/room/model/dto"
	roomMocks "resort/internal/domains/room/service/mocks"
	roomPlanDto "resort/internal/domains/roomplan/model/dto"
	roomPlanMocks "resort/internal/domains/roomplan/service/mocks"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

const (
	roomID    = "7d0c5a0e-3f43-4a57-9b1e-0c2f1f8e6a11"
	planID    = "0e5b7c4a-8d2e-4b6f-a1c3-5e9f2d7b8a22"
	packageID = "4a1f9e3b-6c7d-4e8a-b2f5-1d3c5e7f9a33"
)

type fixture struct {
	repo       *bookingMocks.MockBooking
	db         *dbMocks.MockTransactor
	rooms      *roomMocks.MockRoom
	plans      *roomPlanMocks.MockRoomPlan
	packages   *packageMocks.MockActivityPackage
	activities *activityMocks.MockActivity
	kafka      *kafkaMocks.MockClient
	cache      *cacheMocks.MockRedisCache
	cfg        *config.Config
	svc        service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.Booking = "bookings"

	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		db:         dbMocks.NewMockTransactor(ctrl),
		rooms:      roomMocks.NewMockRoom(ctrl),
		plans:      roomPlanMocks.NewMockRoomPlan(ctrl),
		packages:   packageMocks.NewMockActivityPackage(ctrl),
		activities: activityMocks.NewMockActivity(ctrl),
		kafka:      kafkaMocks.NewMockClient(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		cfg:        cfg,
	}
	f.svc = service.New(f.repo, f.db, f.rooms, f.plans, f.packages, f.activities, f.kafka, cfg, f.cache, mocks.NewOtel())

	f.db.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error { return fn(nil) }).
		AnyTimes()

	return f
}

func (f fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f fixture) bumps() *[]string {
	keys := []string{}
	f.cache.EXPECT().
		Increment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (int64, error) {
			keys = append(keys, key)

			return int64(len(keys)), nil
		}).
		AnyTimes()

	return &keys
}

// locked expects the room lock and the recount on the primary to report
// booked rooms already taken.
func (f fixture) locked(booked int) {
	f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(nil)
	f.repo.EXPECT().SumTx(gomock.Any(), gomock.Any(), model.FieldQuantity, gomock.Any()).Return(booked, nil)
}

func roomRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		Type:       model.TypeRoom,
		RoomID:     roomID,
		GuestName:  "Ayu Lestari",
		GuestEmail: "ayu@example.com",
		CheckIn:    "2099-03-10",
		CheckOut:   "2099-03-13",
		Guests:     3,
		Quantity:   2,
	}
}

func TestBookingService_Create_Room(t *testing.T) {
	room := roomDto.RoomResponse{ID: roomID, HotelID: "hotel-1", Capacity: 2, Quantity: 5, Price: 100, Active: true}

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setup     func(f fixture)
		wantTotal float64
		wantCode  int
	}{
		{
			name: "priced from the room",
			req:  roomRequest,
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(room, nil)
				f.rooms.EXPECT().Availability(gomock.Any(), roomID, roomDto.StayRequest{CheckIn: "2099-03-10", CheckOut: "2099-03-13"}).
					Return(roomDto.AvailabilityResponse{Available: 2}, nil)
			},
			wantTotal: 600,
		},
		{
			name: "priced from the plan",
			req: func() dto.CreateBookingRequest {
				req := roomRequest()
				req.RoomPlanID = planID

				return req
			},
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(room, nil)
				f.plans.EXPECT().Get(gomock.Any(), planID).Return(roomPlanDto.RoomPlanResponse{ID: planID, RoomID: roomID, Price: 150, Active: true}, nil)
				f.rooms.EXPECT().Availability(gomock.Any(), roomID, gomock.Any()).Return(roomDto.AvailabilityResponse{Available: 5}, nil)
			},
			wantTotal: 900,
		},
		{
			name: "plan of another room",
			req: func() dto.CreateBookingRequest {
				req := roomRequest()
				req.RoomPlanID = planID

				return req
			},
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(room, nil)
				f.plans.EXPECT().Get(gomock.Any(), planID).Return(roomPlanDto.RoomPlanResponse{ID: planID, RoomID: "other", Active: true}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "sold out",
			req:  roomRequest,
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(room, nil)
				f.rooms.EXPECT().Availability(gomock.Any(), roomID, gomock.Any()).Return(roomDto.AvailabilityResponse{Available: 1}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "too many guests",
			req: func() dto.CreateBookingRequest {
				req := roomRequest()
				req.Guests = 5

				return req
			},
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(room, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "inactive room",
			req:  roomRequest,
			setup: func(f fixture) {
				inactive := room
				inactive.Active = false
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(inactive, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "check in in the past",
			req: func() dto.CreateBookingRequest {
				req := roomRequest()
				req.CheckIn = "2001-01-01"

				return req
			},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing check out",
			req: func() dto.CreateBookingRequest {
				req := roomRequest()
				req.CheckOut = ""

				return req
			},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "activity package on a room booking",
			req: func() dto.CreateBookingRequest {
				req := roomRequest()
				req.ActivityPackageID = packageID

				return req
			},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req:  roomRequest,
			setup: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(roomDto.RoomResponse{}, failure.NotFound("room not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			if tt.wantCode == 0 {
				f.locked(0)
				f.repo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						require.NotNil(t, booking.HotelID)
						assert.Equal(t, "hotel-1", *booking.HotelID)
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, 3, booking.Nights())
						assert.Equal(t, 2, booking.Quantity)
						require.NotNil(t, booking.RoomID)
						assert.Nil(t, booking.ActivityPackageID)

						return nil
					})
			}

			keys := f.bumps()

			res, err := f.svc.Create(context.WithValue(context.Background(), constant.ContextKeyUserID, "guest"), tt.req())
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, res.TotalPrice, 0.001)
			assert.Equal(t, []string{"version:booking", "version:availability:room:" + roomID}, *keys)
		})
	}
}

func TestBookingService_Create_Activity(t *testing.T) {
	req := dto.CreateBookingRequest{
		Type:              model.TypeActivity,
		ActivityPackageID: packageID,
		GuestName:         "Budi",
		GuestEmail:        "budi@example.com",
		CheckIn:           "2099-05-01",
		Guests:            3,
	}
	pkg := packageDto.PackageResponse{ID: packageID, ActivityID: "act-1", Price: 45, MaxGuests: 4}

	t.Run("priced per guest", func(t *testing.T) {
		f := newFixture(t)
		keys := f.bumps()

		f.packages.EXPECT().Get(gomock.Any(), packageID).Return(pkg, nil)
		f.activities.EXPECT().Get(gomock.Any(), "act-1").Return(activityDto.ActivityResponse{ID: "act-1", Active: true}, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				require.NotNil(t, booking.ActivityID)
				assert.Equal(t, "act-1", *booking.ActivityID)
				assert.Nil(t, booking.RoomID)
				assert.Equal(t, booking.CheckIn, booking.CheckOut)

				return nil
			})

		res, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.InDelta(t, 135, res.TotalPrice, 0.001)
		assert.Equal(t, []string{"version:booking"}, *keys)
	})

	t.Run("over package capacity", func(t *testing.T) {
		f := newFixture(t)

		over := req
		over.Guests = 6

		f.packages.EXPECT().Get(gomock.Any(), packageID).Return(pkg, nil)
		f.activities.EXPECT().Get(gomock.Any(), "act-1").Return(activityDto.ActivityResponse{ID: "act-1", Active: true}, nil)

		_, err := f.svc.Create(context.Background(), over)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inactive activity", func(t *testing.T) {
		f := newFixture(t)

		f.packages.EXPECT().Get(gomock.Any(), packageID).Return(pkg, nil)
		f.activities.EXPECT().Get(gomock.Any(), "act-1").Return(activityDto.ActivityResponse{ID: "act-1"}, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room fields rejected", func(t *testing.T) {
		f := newFixture(t)
		keys := f.bumps()

		withRoom := req
		withRoom.RoomID = roomID
		withRoom.RoomPlanID = planID

		_, err := f.svc.Create(context.Background(), withRoom)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Empty(t, *keys)
	})
}

func TestBookingService_Create_RecountsUnderLock(t *testing.T) {
	room := roomDto.RoomResponse{ID: roomID, HotelID: "hotel-1", Capacity: 2, Quantity: 5, Price: 100, Active: true}

	t.Run("stale availability does not overbook", func(t *testing.T) {
		f := newFixture(t)
		keys := f.bumps()

		f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(room, nil)
		f.rooms.EXPECT().Availability(gomock.Any(), roomID, gomock.Any()).Return(roomDto.AvailabilityResponse{Available: 5}, nil)
		f.locked(4)

		_, err := f.svc.Create(context.Background(), roomRequest())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Contains(t, err.Error(), "only 1 room(s) left")
		assert.Empty(t, *keys)
	})

	t.Run("lock failure aborts the insert", func(t *testing.T) {
		f := newFixture(t)

		f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(room, nil)
		f.rooms.EXPECT().Availability(gomock.Any(), roomID, gomock.Any()).Return(roomDto.AvailabilityResponse{Available: 5}, nil)
		f.repo.EXPECT().LockTx(gomock.Any(), gomock.Any(), roomID).Return(errors.New("lock timeout"))

		_, err := f.svc.Create(context.Background(), roomRequest())
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.cfg.Kafka.Enable = true
	f.bumps()

	f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(roomDto.RoomResponse{ID: roomID, HotelID: "hotel-1", Capacity: 2, Quantity: 3, Price: 100, Active: true}, nil)
	f.rooms.EXPECT().Availability(gomock.Any(), roomID, gomock.Any()).Return(roomDto.AvailabilityResponse{Available: 3}, nil)
	f.locked(0)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().
		SendMessages(gomock.Any(), "bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)

			event, ok := messages[0].Value.(model.Event)
			require.True(t, ok)
			assert.Equal(t, model.EventCreated, event.Type)
			assert.Equal(t, roomID, event.RoomID)
			assert.Equal(t, messages[0].Key, event.BookingID)

			return errors.New("broker down")
		})

	_, err := f.svc.Create(context.Background(), roomRequest())
	assert.NoError(t, err)
}

func TestBookingService_Create_InsertFailure(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Get(gomock.Any(), roomID).Return(roomDto.RoomResponse{ID: roomID, Capacity: 2, Quantity: 3, Price: 100, Active: true}, nil)
	f.rooms.EXPECT().Availability(gomock.Any(), roomID, gomock.Any()).Return(roomDto.AvailabilityResponse{Available: 3}, nil)
	f.locked(0)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	_, err := f.svc.Create(context.Background(), roomRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create booking")
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	room := roomID
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{{
		ID:       "b1",
		Type:     model.TypeRoom,
		RoomID:   &room,
		CheckIn:  time.Date(2099, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2099, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:   model.StatusPending,
	}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.Len(t, res.Items, 1)
	assert.Equal(t, roomID, res.Items[0].RoomID)
	assert.Equal(t, 2, res.Items[0].Nights)
}

func TestBookingService_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.svc.Get(context.Background(), "b9")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Update(t *testing.T) {
	room := roomID

	tests := []struct {
		name     string
		current  string
		req      dto.UpdateBookingRequest
		wantCode int
		wantKeys []string
	}{
		{
			name:     "confirm a pending booking",
			current:  model.StatusPending,
			req:      dto.UpdateBookingRequest{Status: model.StatusConfirmed},
			wantKeys: []string{"version:booking", "version:availability:room:" + roomID},
		},
		{
			name:     "guest details only",
			current:  model.StatusConfirmed,
			req:      dto.UpdateBookingRequest{GuestPhone: "+62811"},
			wantKeys: []string{"version:booking", "version:availability:room:" + roomID},
		},
		{
			name:     "cancelled is final",
			current:  model.StatusCancelled,
			req:      dto.UpdateBookingRequest{Status: model.StatusConfirmed},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "confirmed cannot go back to pending",
			current:  model.StatusConfirmed,
			req:      dto.UpdateBookingRequest{Status: model.StatusPending},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			keys := f.bumps()

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b1", RoomID: &room, Status: tt.current}, nil)

			if tt.wantCode == 0 {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						if tt.req.Status != "" {
							assert.Equal(t, tt.req.Status, fields[model.FieldStatus])
						} else {
							assert.NotContains(t, fields, model.FieldStatus)
						}

						return nil
					})
			}

			err := f.svc.Update(context.Background(), tt.req, "b1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, *keys)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	f := newFixture(t)
	f.cfg.Kafka.Enable = true
	f.bumps()

	room := roomID
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b1", RoomID: &room, Status: model.StatusConfirmed}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().
		SendMessages(gomock.Any(), "bookings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			event, ok := messages[0].Value.(model.Event)
			require.True(t, ok)
			assert.Equal(t, model.EventCancelled, event.Type)
			assert.Equal(t, model.StatusCancelled, event.Status)

			return nil
		})

	assert.NoError(t, f.svc.Cancel(context.Background(), "b1"))
}
