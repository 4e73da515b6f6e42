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
	roomMocks "resort/internal/domains/room/mocks"
	planMocks "resort/internal/domains/roomplan/mocks"
	"resort/internal/domains/roomplan/model"
	"resort/internal/domains/roomplan/model/dto"
	"resort/internal/domains/roomplan/service"
	cacheMocks "resort/shared/cache/mocks"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

func setup(t *testing.T) (*planMocks.MockRoomPlan, *roomMocks.MockRoom, *cacheMocks.MockRedisCache, service.RoomPlan) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := planMocks.NewMockRoomPlan(ctrl)
	rooms := roomMocks.NewMockRoom(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	return repo, rooms, cache, service.New(repo, rooms, cfg, cache, mocks.NewOtel())
}

func TestRoomPlanService_Create(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *planMocks.MockRoomPlan, rooms *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantCode int
	}{
		{
			name: "success",
			setup: func(repo *planMocks.MockRoomPlan, rooms *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, plan model.RoomPlan) error {
						assert.Equal(t, "r1", plan.RoomID)
						assert.InDelta(t, 150.0, plan.Price, 0.001)
						assert.True(t, plan.Breakfast)

						return nil
					})
				cache.EXPECT().Increment(gomock.Any(), "version:room_plan").Return(int64(1), nil)
			},
		},
		{
			name: "unknown room",
			setup: func(_ *planMocks.MockRoomPlan, rooms *roomMocks.MockRoom, _ *cacheMocks.MockRedisCache) {
				rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "room lookup fails",
			setup: func(_ *planMocks.MockRoomPlan, rooms *roomMocks.MockRoom, _ *cacheMocks.MockRedisCache) {
				rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, rooms, cache, svc := setup(t)
			tt.setup(repo, rooms, cache)

			err := svc.Create(context.Background(), "r1", dto.CreateRoomPlanRequest{Name: "Bed & Breakfast", Price: 150, Breakfast: true})
			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestRoomPlanService_GetAll_FiltersByRoom(t *testing.T) {
	repo, _, cache, svc := setup(t)

	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, "r1", args[model.FieldRoomID])

			return 2, nil
		})
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.RoomPlan{{ID: "p1", RoomID: "r1"}, {ID: "p2", RoomID: "r1"}}, nil)

	res, err := svc.GetAll(context.Background(), "r1", gDto.QueryParams{Page: 1, Limit: 10})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestRoomPlanService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, _, _, svc := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(context.Background(), "p9")))
	})

	t.Run("success", func(t *testing.T) {
		repo, _, cache, svc := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		cache.EXPECT().Increment(gomock.Any(), "version:room_plan").Return(int64(2), nil)

		assert.NoError(t, svc.Delete(context.Background(), "p1"))
	})
}
