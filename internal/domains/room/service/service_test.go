package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	bookingMocks "resort/internal/domains/booking/mocks"
	mediaMocks "resort/internal/domains/media/service/mocks"
	roomMocks "resort/internal/domains/room/mocks"
	"resort/internal/domains/room/model"
	"resort/internal/domains/room/model/dto"
	"resort/internal/domains/room/service"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

type fixture struct {
	repo     *roomMocks.MockRoom
	bookings *bookingMocks.MockBooking
	media    *mediaMocks.MockMedia
	cache    *cacheMocks.MockRedisCache
	svc      service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:     roomMocks.NewMockRoom(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		media:    mediaMocks.NewMockMedia(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.bookings, f.media, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateRoomRequest
		setup   func(f fixture)
		wantErr string
	}{
		{
			name: "without image",
			req:  dto.CreateRoomRequest{HotelID: "hotel-1", Name: "Deluxe", Capacity: 2, Quantity: 5, Price: 120},
			setup: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "hotel-1", room.HotelID)
						assert.Equal(t, 5, room.Quantity)
						assert.Empty(t, room.Image)
						assert.True(t, room.Active)

						return nil
					})
				f.cache.EXPECT().Increment(gomock.Any(), "version:room").Return(int64(1), nil)
			},
		},
		{
			name: "with image",
			req: dto.CreateRoomRequest{
				HotelID: "hotel-1", Name: "Suite", Capacity: 4, Quantity: 1,
				Image: &multipart.FileHeader{Filename: "suite.png"},
			},
			setup: func(f fixture) {
				f.media.EXPECT().
					Store(gomock.Any(), "rooms", gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/rooms/suite.png", nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, "https://cdn.example.com/rooms/suite.png", room.Image)

						return nil
					})
				f.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "insert failure removes the uploaded image",
			req: dto.CreateRoomRequest{
				HotelID: "hotel-1", Name: "Suite", Capacity: 4, Quantity: 1,
				Image: &multipart.FileHeader{Filename: "suite.png"},
			},
			setup: func(f fixture) {
				f.media.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn/x.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				f.media.EXPECT().DeleteLater(gomock.Any(), "https://cdn/x.png")
			},
			wantErr: "failed to create room",
		},
		{
			name: "upload failure",
			req: dto.CreateRoomRequest{
				HotelID: "hotel-1", Name: "Suite", Capacity: 4, Quantity: 1,
				Image: &multipart.FileHeader{Filename: "suite.png"},
			},
			setup: func(f fixture) {
				f.media.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))
			},
			wantErr: "failed to upload room image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.Create(context.WithValue(context.Background(), constant.ContextKeyUserID, "admin"), tt.req)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{{ID: "r1", Name: "Deluxe"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Deluxe", res.Items[0].Name)
	assert.Equal(t, 1, res.TotalPage)
}

func TestRoomService_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	_, err := f.svc.Get(context.Background(), "r9")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_Update_ReplacesImage(t *testing.T) {
	f := newFixture(t)
	quantity := 3

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", Image: "https://cdn/old.png"}, nil)
	f.media.EXPECT().Store(gomock.Any(), "rooms", gomock.Any(), gomock.Any()).Return("https://cdn/new.png", nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "https://cdn/new.png", fields[model.FieldImage])
			assert.Equal(t, &quantity, fields[model.FieldQuantity])

			return nil
		})
	f.media.EXPECT().DeleteLater(gomock.Any(), "https://cdn/old.png")
	f.cache.EXPECT().Increment(gomock.Any(), "version:room").Return(int64(2), nil)
	f.cache.EXPECT().Increment(gomock.Any(), "version:availability:room:r1").Return(int64(1), nil)

	err := f.svc.Update(context.Background(), dto.UpdateRoomRequest{
		Quantity: &quantity,
		Image:    &multipart.FileHeader{Filename: "new.png"},
	}, "r1")
	assert.NoError(t, err)
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("still booked", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(failure.Conflict("room is still in use"))

		err := f.svc.Delete(context.Background(), "r1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success cleans the image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", Image: "https://cdn/r1.png"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.media.EXPECT().DeleteLater(gomock.Any(), "https://cdn/r1.png")
		f.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)

		assert.NoError(t, f.svc.Delete(context.Background(), "r1"))
	})
}

func TestRoomService_Availability(t *testing.T) {
	tests := []struct {
		name          string
		stay          dto.StayRequest
		booked        int
		wantAvailable int
		wantCode      int
	}{
		{name: "free rooms", stay: dto.StayRequest{CheckIn: "2026-12-01", CheckOut: "2026-12-03"}, booked: 2, wantAvailable: 3},
		{name: "overbooked clamps to zero", stay: dto.StayRequest{CheckIn: "2026-12-01", CheckOut: "2026-12-03"}, booked: 7, wantAvailable: 0},
		{name: "inverted stay", stay: dto.StayRequest{CheckIn: "2026-12-03", CheckOut: "2026-12-01"}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.wantCode == 0 {
				f.cacheMiss()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", Quantity: 5}, nil)
				f.bookings.EXPECT().
					Sum(gomock.Any(), "quantity", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, filter gDto.FilterGroup) (int, error) {
						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "bookings.status != :status")
						assert.Equal(t, "2026-12-03", args["overlap_check_out"])

						return tt.booked, nil
					})
			}

			res, err := f.svc.Availability(context.Background(), "r1", tt.stay)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)

			time.Sleep(10 * time.Millisecond)

			assert.Equal(t, tt.wantAvailable, res.Available)
			assert.Equal(t, tt.booked, res.Booked)
		})
	}
}
