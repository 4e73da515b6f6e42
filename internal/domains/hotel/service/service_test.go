package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	amenityDto "resort/internal/domains/amenity/model/dto"
	amenityMocks "resort/internal/domains/amenity/service/mocks"
	hotelMocks "resort/internal/domains/hotel/mocks"
	"resort/internal/domains/hotel/model"
	"resort/internal/domains/hotel/model/dto"
	"resort/internal/domains/hotel/service"
	mediaMocks "resort/internal/domains/media/service/mocks"
	policyDto "resort/internal/domains/policy/model/dto"
	policyMocks "resort/internal/domains/policy/service/mocks"
	roomDto "resort/internal/domains/room/model/dto"
	roomMocks "resort/internal/domains/room/service/mocks"
	safetyDto "resort/internal/domains/safetyfeature/model/dto"
	safetyMocks "resort/internal/domains/safetyfeature/service/mocks"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

type fixture struct {
	repo      *hotelMocks.MockHotel
	rooms     *roomMocks.MockRoom
	policies  *policyMocks.MockPolicy
	amenities *amenityMocks.MockAmenity
	safety    *safetyMocks.MockSafetyFeature
	media     *mediaMocks.MockMedia
	cache     *cacheMocks.MockRedisCache
	svc       service.Hotel
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:      hotelMocks.NewMockHotel(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		policies:  policyMocks.NewMockPolicy(ctrl),
		amenities: amenityMocks.NewMockAmenity(ctrl),
		safety:    safetyMocks.NewMockSafetyFeature(ctrl),
		media:     mediaMocks.NewMockMedia(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.rooms, f.policies, f.amenities, f.safety, f.media, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestHotelService_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateHotelRequest
		setup    func(f fixture)
		wantSlug string
		wantCode int
	}{
		{
			name:     "slug from name",
			req:      dto.CreateHotelRequest{Name: "Ocean View Resort & Spa", Location: "Bali"},
			wantSlug: "ocean-view-resort-spa",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Increment(gomock.Any(), "version:hotel").Return(int64(1), nil)
			},
		},
		{
			name:     "explicit slug",
			req:      dto.CreateHotelRequest{Name: "Ocean View", Slug: "ocean", Location: "Bali"},
			wantSlug: "ocean",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name:     "name without letters",
			req:      dto.CreateHotelRequest{Name: "!!!", Location: "Bali"},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "duplicate slug",
			req:  dto.CreateHotelRequest{Name: "Ocean View", Location: "Bali"},
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Conflict("hotel already exists"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Create(context.WithValue(context.Background(), constant.ContextKeyUserID, "admin"), tt.req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, res.Slug)
			assert.True(t, res.Active)
			assert.Equal(t, "admin", res.CreatedBy)
		})
	}
}

func TestHotelService_GetBySlug(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Hotel, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "hotels.slug")
			assert.Equal(t, "ocean-view", args["slug"])

			return model.Hotel{ID: "h1", Slug: "ocean-view"}, nil
		})

	res, err := f.svc.GetBySlug(context.Background(), "ocean-view")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	assert.Equal(t, "h1", res.ID)
}

func TestHotelService_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestHotelService_Update(t *testing.T) {
	t.Run("new image removes the old one", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h1", Image: "https://cdn/old.png"}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "https://cdn/new.png", fields[model.FieldImage])
				assert.NotContains(t, fields, model.FieldName)

				return nil
			})
		f.media.EXPECT().DeleteLater(gomock.Any(), "https://cdn/old.png")
		f.cache.EXPECT().Increment(gomock.Any(), "version:hotel").Return(int64(2), nil)

		assert.NoError(t, f.svc.Update(context.Background(), dto.UpdateHotelRequest{Image: "https://cdn/new.png"}, "h1"))
	})

	t.Run("same image is kept", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h1", Image: "https://cdn/old.png"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Increment(gomock.Any(), gomock.Any()).Return(int64(2), nil)

		assert.NoError(t, f.svc.Update(context.Background(), dto.UpdateHotelRequest{Name: "New", Image: "https://cdn/old.png"}, "h1"))
	})
}

func TestHotelService_Delete(t *testing.T) {
	t.Run("has bookings", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h1"}, nil)
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomDto.GetRoomsResponse{}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(failure.Conflict("hotel is still in use"))

		err := f.svc.Delete(context.Background(), "h1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success cleans images and caches", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h1", Image: "https://cdn/h1.png"}, nil)
		f.rooms.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
			Return(roomDto.GetRoomsResponse{Items: []roomDto.RoomResponse{{ID: "r1", Image: "https://cdn/r1.png"}, {ID: "r2"}}}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.media.EXPECT().DeleteLater(gomock.Any(), "https://cdn/h1.png", "https://cdn/r1.png", "")

		bumped := []string{}
		f.cache.EXPECT().
			Increment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) (int64, error) {
				bumped = append(bumped, key)

				return 1, nil
			}).
			Times(5)

		require.NoError(t, f.svc.Delete(context.Background(), "h1"))
		assert.Equal(t, []string{
			"version:hotel",
			"version:room",
			"version:policy:hotel:h1",
			"version:hotel_amenity:h1",
			"version:hotel_safety_feature:h1",
		}, bumped)
	})
}

func TestHotelService_Detail(t *testing.T) {
	t.Run("composes every part", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h1", Name: "Ocean"}, nil)
		f.rooms.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (roomDto.GetRoomsResponse, error) {
				assert.Equal(t, "rooms.price", params.SortBy)

				_, args := filter.GetWhereClause()
				assert.Equal(t, true, args["active"])

				return roomDto.GetRoomsResponse{Items: []roomDto.RoomResponse{{ID: "r1"}}}, nil
			})
		f.policies.EXPECT().
			List(gomock.Any(), constant.OwnerTypeHotel, "h1").
			Return(policyDto.PolicyListResponse{Include: []string{"Breakfast"}}, nil)
		f.amenities.EXPECT().ListHotel(gomock.Any(), "h1").Return(amenityDto.HotelAmenitiesResponse{}, nil)
		f.safety.EXPECT().ListHotel(gomock.Any(), "h1").Return(safetyDto.HotelSafetyFeaturesResponse{}, nil)

		res, err := f.svc.Detail(context.Background(), "h1")
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		assert.Equal(t, "Ocean", res.Name)
		require.Len(t, res.Rooms, 1)
		assert.Equal(t, []string{"Breakfast"}, res.Policies.Include)
	})

	t.Run("part failure", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "h1"}, nil)
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomDto.GetRoomsResponse{}, nil).AnyTimes()
		f.policies.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(policyDto.PolicyListResponse{}, errors.New("database error")).AnyTimes()
		f.amenities.EXPECT().ListHotel(gomock.Any(), gomock.Any()).Return(amenityDto.HotelAmenitiesResponse{}, nil).AnyTimes()
		f.safety.EXPECT().ListHotel(gomock.Any(), gomock.Any()).Return(safetyDto.HotelSafetyFeaturesResponse{}, nil).AnyTimes()

		_, err := f.svc.Detail(context.Background(), "h1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get hotel detail")
	})

	t.Run("unknown hotel", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := f.svc.Detail(context.Background(), "nope")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
