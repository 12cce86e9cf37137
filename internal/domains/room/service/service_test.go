package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pms/config"
	"pms/infras/otel/mocks"
	s3Mocks "pms/infras/s3/mocks"
	roomMocks "pms/internal/domains/room/mocks"
	"pms/internal/domains/room/model"
	"pms/internal/domains/room/model/dto"
	"pms/internal/domains/room/service"
	cacheMocks "pms/shared/cache/mocks"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Room
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "created with defaults",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
					assert.Equal(t, model.StatusAvailable, room.Status)
					assert.Equal(t, "101", room.Number)
					assert.Equal(t, "user-1", room.CreatedBy)
					assert.NotEmpty(t, room.ID)

					return nil
				})
			},
		},
		{
			name: "duplicate number",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "database error",
			setup: func(f fixture) {
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Create(userCtx(), dto.CreateRoomRequest{Number: " 101 ", Type: model.TypeStandard, Capacity: 2, BasePrice: 99})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "101", res.Number)
			assert.Equal(t, []string{}, res.Amenities)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "room:get:room-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, _ := value.(*dto.RoomResponse)
			res.ID = "room-1"

			return nil
		})

		res, err := f.svc.Get(userCtx(), "room-1")
		require.NoError(t, err)
		assert.Equal(t, "room-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(userCtx(), "room-9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("from repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-2", Number: "102", Status: model.StatusOccupied}, nil)

		res, err := f.svc.Get(userCtx(), "room-2")
		require.NoError(t, err)
		assert.Equal(t, model.StatusOccupied, res.Status)
	})
}

func TestRoomService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := dto.ListRoomsRequest{Status: "all", Search: "suite"}.ToFilter()

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), filter).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.Room{{ID: "room-11", Number: "301", Type: model.TypeSuite}}, nil)

	res, err := f.svc.GetAll(userCtx(), params, filter)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	require.Len(t, res.Rooms, 1)
	assert.Equal(t, "301", res.Rooms[0].Number)
}

func TestRoomService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(userCtx(), dto.UpdateRoomRequest{}, "room-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("explicit zero floor is written", func(t *testing.T) {
		f := newFixture(t)
		floor := 0

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1"}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, 0, fields[model.FieldFloor])
			assert.Equal(t, "user-1", fields[constant.FieldModifiedBy])

			return nil
		})

		require.NoError(t, f.svc.Update(userCtx(), dto.UpdateRoomRequest{Floor: &floor}, "room-1"))
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
		assert.Equal(t, model.StatusMaintenance, fields[model.FieldStatus])

		return nil
	})

	require.NoError(t, f.svc.UpdateStatus(userCtx(), dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance}, "room-1"))

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.UpdateStatus(userCtx(), dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance}, "room-x")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-1", Image: "https://cdn.test/room/a.png"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn.test/room/a.png").Return(nil)

	require.NoError(t, f.svc.Delete(userCtx(), "room-1"))

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "room-2"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})

	err := f.svc.Delete(userCtx(), "room-2")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}
