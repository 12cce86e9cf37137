package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"pms/config"
	"pms/infras/otel/mocks"
	guestMocks "pms/internal/domains/guest/mocks"
	"pms/internal/domains/guest/model"
	"pms/internal/domains/guest/model/dto"
	"pms/internal/domains/guest/service"
	cacheMocks "pms/shared/cache/mocks"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*guestMocks.MockGuest, service.Guest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestGuestService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")

	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantCode  int
	}{
		{
			name: "success lowercases email",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, guest model.Guest) error {
					assert.Equal(t, "ann@example.com", guest.Email)

					return nil
				})
			},
		},
		{
			name: "duplicate email",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setup(t)
			tt.setupMock(repo)

			res, err := svc.Create(ctx, dto.CreateGuestRequest{Name: "Ann Lee", Email: " Ann@Example.com", Phone: "555-0101"})
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Ann Lee", res.Name)
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	repo, svc := setup(t)

	filter := dto.ToFilter("ann")
	params := gDto.QueryParams{Page: 1, Limit: 5}

	repo.EXPECT().Count(gomock.Any(), filter).Return(6, nil)
	repo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.Guest{{ID: "guest-1", Name: "Ann"}}, nil)

	res, err := svc.GetAll(context.Background(), params, filter)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Guests, 1)
}

func TestGuestService_Get(t *testing.T) {
	repo, svc := setup(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestGuestService_Update(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, svc := setup(t)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{}, "guest-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		repo, svc := setup(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "new@example.com", fields[model.FieldEmail])

			return nil
		})

		require.NoError(t, svc.Update(context.Background(), dto.UpdateGuestRequest{Email: "NEW@example.com"}, "guest-1"))
	})
}

func TestGuestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantCode  int
	}{
		{
			name: "not found",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "has bookings",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23503"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "success",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := setup(t)
			tt.setupMock(repo)

			err := svc.Delete(context.Background(), "guest-1")
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
