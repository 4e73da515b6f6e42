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
	"resort/infras/otel/mocks"
	dbMocks "resort/infras/postgres/mocks"
	featureMocks "resort/internal/domains/safetyfeature/mocks"
	"resort/internal/domains/safetyfeature/model"
	"resort/internal/domains/safetyfeature/model/dto"
	"resort/internal/domains/safetyfeature/service"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/ordering"
)

type fixture struct {
	repo  *featureMocks.MockSafetyFeature
	links *featureMocks.MockHotelSafetyFeature
	db    *dbMocks.MockTransactor
	cache *cacheMocks.MockRedisCache
	svc   service.SafetyFeature
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  featureMocks.NewMockSafetyFeature(ctrl),
		links: featureMocks.NewMockHotelSafetyFeature(ctrl),
		db:    dbMocks.NewMockTransactor(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.links, f.db, cfg, f.cache, mocks.NewOtel())

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

func TestSafetyFeatureService_Create(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f fixture)
		wantErr bool
	}{
		{
			name: "success",
			setup: func(f fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, feature model.SafetyFeature) error {
						assert.NotEmpty(t, feature.ID)
						assert.Equal(t, "CCTV", feature.Name)
						assert.True(t, feature.Active)
						assert.Equal(t, "admin", feature.CreatedBy)

						return nil
					})
				f.cache.EXPECT().Increment(gomock.Any(), "version:safety_feature").Return(int64(1), nil)
			},
		},
		{
			name: "repository error",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
			err := f.svc.Create(ctx, dto.CreateSafetyFeatureRequest{Name: "CCTV", Icon: "cctv"})

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create safety feature")

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestSafetyFeatureService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cacheMiss()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.SafetyFeature{}, nil)

		_, err := f.svc.Get(context.Background(), "a9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				if res, ok := value.(*dto.SafetyFeatureResponse); ok {
					res.ID = "a1"
					res.Name = "cached"
				}

				return nil
			}).
			AnyTimes()

		res, err := f.svc.Get(context.Background(), "a1")
		require.NoError(t, err)
		assert.Equal(t, "cached", res.Name)
	})
}

func TestSafetyFeatureService_Delete(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(failure.Conflict("safety feature is still in use"))

		err := f.svc.Delete(context.Background(), "a1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Increment(gomock.Any(), "version:safety_feature").Return(int64(3), nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "a1"))
	})
}

func TestSafetyFeatureService_ListHotel(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.links.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.HotelSafetyFeature, error) {
			assert.Equal(t, "hotel_safety_features.sort_order", params.SortBy)

			return []model.HotelSafetyFeature{
				{ID: "l1", FeatureID: "a1", Name: "CCTV", SortOrder: 0, Metadata: gModel.Metadata{}},
				{ID: "l2", FeatureID: "a2", Name: "Smoke detector", SortOrder: 1},
			}, nil
		})

	res, err := f.svc.ListHotel(context.Background(), "hotel-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "Smoke detector", res.Items[1].Payload.Name)
	assert.Equal(t, 1, res.Items[1].Order)
	assert.Equal(t, ordering.ItemTypeExisting, res.Items[0].Type)
}

func TestSafetyFeatureService_SyncHotel(t *testing.T) {
	f := newFixture(t)

	f.links.EXPECT().
		EntriesTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ordering.Entry{{ID: "l1", Order: 0}}, nil)
	f.links.EXPECT().
		GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.HotelSafetyFeature{{ID: "l1", HotelID: "hotel-1", FeatureID: "f1", Name: "Smoke detector"}}, nil)
	f.links.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "f3", mod[model.LinkFieldFeatureID])
			assert.NotContains(t, mod, "name")

			return nil
		})
	f.links.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, link model.HotelSafetyFeature) error {
			assert.Equal(t, "hotel-1", link.HotelID)
			assert.Equal(t, "a2", link.FeatureID)
			assert.Equal(t, 0, link.SortOrder)

			return nil
		})
	f.links.EXPECT().
		ReorderTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, ids []string, _ gDto.FilterGroup) error {
			require.Len(t, ids, 2)
			assert.Equal(t, "l1", ids[1])

			return nil
		})
	f.cache.EXPECT().Increment(gomock.Any(), "version:hotel_safety_feature:hotel-1").Return(int64(1), nil)

	err := f.svc.SyncHotel(context.Background(), "hotel-1", dto.SyncHotelSafetyFeaturesRequest{
		Items: []ordering.DisplayItem[dto.HotelSafetyFeaturePayload]{
			{ID: "tmp-1", Type: ordering.ItemTypeNew, Payload: dto.HotelSafetyFeaturePayload{FeatureID: "a2"}},
			{ID: "l1", Type: ordering.ItemTypeExisting, Order: 1, Payload: dto.HotelSafetyFeaturePayload{FeatureID: "f3", Name: "Smoke detector"}},
		},
	})
	assert.NoError(t, err)
}

func TestSafetyFeatureService_ReorderHotel_UnknownID(t *testing.T) {
	f := newFixture(t)

	f.links.EXPECT().
		EntriesTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ordering.Entry{{ID: "l1", Order: 0}, {ID: "l2", Order: 1}}, nil)

	err := f.svc.ReorderHotel(context.Background(), "hotel-1", gDto.ReorderRequest{IDs: []string{"l2", "l3"}})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
