package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pms/config"
	"pms/infras/otel/mocks"
	s3Mocks "pms/infras/s3/mocks"
	staffMocks "pms/internal/domains/staff/mocks"
	"pms/internal/domains/staff/model"
	"pms/internal/domains/staff/model/dto"
	"pms/internal/domains/staff/service"
	cacheMocks "pms/shared/cache/mocks"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const pixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

type fixture struct {
	repo *staffMocks.MockStaff
	s3   *s3Mocks.MockS3
	svc  service.Staff
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo: staffMocks.NewMockStaff(ctrl),
		s3:   s3Mocks.NewMockS3(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, cfg, mockCache, mocks.NewOtel(), f.s3)

	return f
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func TestStaffService_Create(t *testing.T) {
	req := dto.CreateStaffRequest{
		Name:       " Emma Johnson ",
		Email:      "Emma.Johnson@Example.com",
		Role:       "Manager",
		Department: "Front Desk",
		StartDate:  "2022-03-15",
	}

	t.Run("uploads the avatar", func(t *testing.T) {
		f := newFixture(t)
		withAvatar := req
		withAvatar.Avatar = pixel

		f.s3.EXPECT().UploadFileBytes(gomock.Any(), "avatars", gomock.Any(), "image/png", gomock.Any()).DoAndReturn(
			func(_ context.Context, _, name, _ string, data []byte) (string, error) {
				assert.Contains(t, name, ".png")
				assert.Equal(t, byte(0x89), data[0])

				return "https://cdn.example.com/avatars/a.png", nil
			})
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, staff model.Staff) error {
			assert.Equal(t, "Emma Johnson", staff.Name)
			assert.Equal(t, "emma.johnson@example.com", staff.Email)
			assert.Equal(t, model.StatusActive, staff.Status)
			assert.Equal(t, time.Date(2022, 3, 15, 0, 0, 0, 0, time.UTC), staff.StartDate)

			return nil
		})

		res, err := f.svc.Create(userCtx(), withAvatar)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/avatars/a.png", res.Avatar)
		assert.Equal(t, "2022-03-15", res.StartDate)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})

		_, err := f.svc.Create(userCtx(), req)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("malformed avatar", func(t *testing.T) {
		f := newFixture(t)
		bad := req
		bad.Avatar = "not-a-data-uri"

		_, err := f.svc.Create(userCtx(), bad)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestStaffService_Update(t *testing.T) {
	t.Run("replaces the avatar", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{ID: "staff-1", Avatar: "https://cdn.example.com/avatars/old.png"}, nil)
		f.s3.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.example.com/avatars/new.png", nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "https://cdn.example.com/avatars/new.png", fields[model.FieldAvatar])
				assert.Equal(t, model.StatusInactive, fields[model.FieldStatus])

				return nil
			})
		f.s3.EXPECT().DeleteByURL(gomock.Any(), "https://cdn.example.com/avatars/old.png").Return(nil)

		err := f.svc.Update(userCtx(), dto.UpdateStaffRequest{Status: model.StatusInactive, Avatar: pixel}, "staff-1")
		require.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(userCtx(), dto.UpdateStaffRequest{}, "staff-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestStaffService_Delete(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)

	err := f.svc.Delete(userCtx(), "staff-9")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestListStaffRequest_ToFilter(t *testing.T) {
	where, args := dto.ListStaffRequest{Search: "emma", Department: "all", Status: model.StatusActive}.ToFilter().GetWhereClause()

	assert.Equal(t,
		"((LOWER(CAST(staff.name AS TEXT)) LIKE LOWER(:search_name) ESCAPE '!' OR LOWER(CAST(staff.email AS TEXT)) LIKE LOWER(:search_email) ESCAPE '!' OR LOWER(CAST(staff.role AS TEXT)) LIKE LOWER(:search_role) ESCAPE '!') AND staff.status = :status)",
		where,
	)
	assert.Equal(t, "%emma%", args["search_name"])
}
