package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	dbMocks "resort/infras/postgres/mocks"
	itineraryMocks "resort/internal/domains/itinerary/mocks"
	"resort/internal/domains/itinerary/model"
	"resort/internal/domains/itinerary/model/dto"
	"resort/internal/domains/itinerary/service"
	cacheMocks "resort/shared/cache/mocks"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/ordering"
)

type fixture struct {
	repo  *itineraryMocks.MockItinerary
	cache *cacheMocks.MockRedisCache
	svc   service.Itinerary
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
		repo:  itineraryMocks.NewMockItinerary(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, db, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestItineraryService_List_CacheHit(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			if res, ok := value.(*dto.ItineraryResponse); ok {
				res.Items = []ordering.DisplayItem[dto.StepPayload]{{ID: "s1", Payload: dto.StepPayload{Title: "Pickup"}}}
			}

			return nil
		}).
		AnyTimes()

	res, err := f.svc.List(context.Background(), "act-1")
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Pickup", res.Items[0].Payload.Title)
}

func TestItineraryService_Sync(t *testing.T) {
	tests := []struct {
		name     string
		items    []ordering.DisplayItem[dto.StepPayload]
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "drops removed steps",
			items: []ordering.DisplayItem[dto.StepPayload]{
				{ID: "s2", Type: ordering.ItemTypeExisting, Payload: dto.StepPayload{Title: "Snorkel"}},
			},
			setup: func(f fixture) {
				f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().ReorderTx(gomock.Any(), gomock.Any(), []string{"s2"}, gomock.Any()).Return(nil)
				f.cache.EXPECT().Increment(gomock.Any(), "version:itinerary:act-1").Return(int64(1), nil)
			},
		},
		{
			name: "writes an edited step",
			items: []ordering.DisplayItem[dto.StepPayload]{
				{ID: "s1", Type: ordering.ItemTypeExisting, Payload: dto.StepPayload{StartTime: "08:00", Title: "Hotel pickup"}},
				{ID: "s2", Type: ordering.ItemTypeExisting, Payload: dto.StepPayload{Title: "Snorkel"}},
			},
			setup: func(f fixture) {
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Hotel pickup", mod[model.FieldTitle])
						assert.Equal(t, "08:00", mod[model.FieldStartTime])

						return nil
					})
				f.repo.EXPECT().ReorderTx(gomock.Any(), gomock.Any(), []string{"s1", "s2"}, gomock.Any()).Return(nil)
				f.cache.EXPECT().Increment(gomock.Any(), "version:itinerary:act-1").Return(int64(1), nil)
			},
		},
		{
			name: "unknown existing id",
			items: []ordering.DisplayItem[dto.StepPayload]{
				{ID: "s9", Type: ordering.ItemTypeExisting},
			},
			setup:    func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().
				EntriesTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]ordering.Entry{{ID: "s1", Order: 0}, {ID: "s2", Order: 1}}, nil)
			f.repo.EXPECT().
				GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).
				Return([]model.Itinerary{{ID: "s1", Title: "Pickup"}, {ID: "s2", Title: "Snorkel"}}, nil)
			tt.setup(f)

			err := f.svc.Sync(context.Background(), "act-1", dto.SyncItineraryRequest{Items: tt.items})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestItineraryService_Reorder(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		EntriesTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ordering.Entry{{ID: "s1", Order: 0}, {ID: "s2", Order: 1}}, nil)
	f.repo.EXPECT().ReorderTx(gomock.Any(), gomock.Any(), []string{"s2", "s1"}, gomock.Any()).Return(nil)
	f.cache.EXPECT().Increment(gomock.Any(), "version:itinerary:act-1").Return(int64(2), nil)

	assert.NoError(t, f.svc.Reorder(context.Background(), "act-1", gDto.ReorderRequest{IDs: []string{"s2", "s1"}}))
}

func TestItineraryService_Update_NotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Itinerary{}, nil)

	err := f.svc.Update(context.Background(), dto.UpdateStepRequest{Title: "x"}, "s9")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestItineraryService_Delete_Failure(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Itinerary{ID: "s1", ActivityID: "act-1"}, nil)
	f.repo.EXPECT().EntriesTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	err := f.svc.Delete(context.Background(), "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete itinerary step")
}
