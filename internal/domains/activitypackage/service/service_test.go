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
	packageMocks "resort/internal/domains/activitypackage/mocks"
	"resort/internal/domains/activitypackage/model"
	"resort/internal/domains/activitypackage/model/dto"
	"resort/internal/domains/activitypackage/service"
	cacheMocks "resort/shared/cache/mocks"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/ordering"
)

type fixture struct {
	repo  *packageMocks.MockActivityPackage
	cache *cacheMocks.MockRedisCache
	svc   service.ActivityPackage
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	db := dbMocks.NewMockTransactor(ctrl)
	db.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error { return fn(nil) }).
		AnyTimes()

	f := fixture{
		repo:  packageMocks.NewMockActivityPackage(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, db, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestActivityPackageService_List(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ActivityPackage, error) {
			assert.Equal(t, "activity_packages.sort_order", params.SortBy)

			return []model.ActivityPackage{
				{ID: "k1", Name: "Half day", Price: 40, SortOrder: 0},
				{ID: "k2", Name: "Full day", Price: 70, SortOrder: 1},
			}, nil
		})

	res, err := f.svc.List(context.Background(), "act-1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "Full day", res.Items[1].Payload.Name)
	assert.Equal(t, ordering.ItemTypeExisting, res.Items[0].Type)
}

func TestActivityPackageService_Sync(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		EntriesTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ordering.Entry{{ID: "k1", Order: 0}}, nil)
	f.repo.EXPECT().
		GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.ActivityPackage{{ID: "k1", Name: "Half day", Price: 30}}, nil)
	f.repo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "Half day", mod[model.FieldName])
			assert.InDelta(t, 35.0, mod[model.FieldPrice], 0.001)

			return nil
		})
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, pkg model.ActivityPackage) error {
			assert.Equal(t, "act-1", pkg.ActivityID)
			assert.Equal(t, 0, pkg.SortOrder)
			assert.InDelta(t, 55.0, pkg.Price, 0.001)

			return nil
		})
	f.repo.EXPECT().
		ReorderTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, ids []string, _ gDto.FilterGroup) error {
			require.Len(t, ids, 2)
			assert.Equal(t, "k1", ids[1])

			return nil
		})
	f.cache.EXPECT().Increment(gomock.Any(), "version:activity_package:act-1").Return(int64(1), nil)

	err := f.svc.Sync(context.Background(), "act-1", dto.SyncPackagesRequest{
		Items: []ordering.DisplayItem[dto.PackagePayload]{
			{ID: "tmp", Type: ordering.ItemTypeNew, Payload: dto.PackagePayload{Name: "Sunset", Price: 55}},
			{ID: "k1", Type: ordering.ItemTypeExisting, Payload: dto.PackagePayload{Name: "Half day", Price: 35}},
		},
	})
	assert.NoError(t, err)
}

func TestActivityPackageService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ActivityPackage{}, nil)

		_, err := f.svc.Get(context.Background(), "k9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ActivityPackage{ID: "k1", ActivityID: "act-1", Price: 40}, nil)

		res, err := f.svc.Get(context.Background(), "k1")
		require.NoError(t, err)
		assert.Equal(t, "act-1", res.ActivityID)
	})
}

func TestActivityPackageService_Update(t *testing.T) {
	f := newFixture(t)
	price := 80.0

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ActivityPackage{ID: "k1", ActivityID: "act-1"}, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, &price, fields[model.FieldPrice])

			return nil
		})
	f.cache.EXPECT().Increment(gomock.Any(), "version:activity_package:act-1").Return(int64(2), nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin")
	assert.NoError(t, f.svc.Update(ctx, dto.UpdatePackageRequest{Price: &price}, "k1"))
}

func TestActivityPackageService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ActivityPackage{ID: "k1", ActivityID: "act-1"}, nil)
	f.repo.EXPECT().
		EntriesTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ordering.Entry{{ID: "k1", Order: 0}, {ID: "k2", Order: 1}}, nil)
	f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().ReorderTx(gomock.Any(), gomock.Any(), []string{"k2"}, gomock.Any()).Return(nil)
	f.cache.EXPECT().Increment(gomock.Any(), "version:activity_package:act-1").Return(int64(3), nil)

	assert.NoError(t, f.svc.Delete(context.Background(), "k1"))
}
