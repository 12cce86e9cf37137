package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"pms/config"
	"pms/infras/jwt"
	jwtMocks "pms/infras/jwt/mocks"
	"pms/infras/kafka"
	kafkaMocks "pms/infras/kafka/mocks"
	"pms/infras/otel/mocks"
	"pms/internal/domains/auth/model"
	"pms/internal/domains/auth/model/dto"
	"pms/internal/domains/auth/service"
	userMocks "pms/internal/domains/user/mocks"
	userModel "pms/internal/domains/user/model"
	"pms/shared/cache"
	cacheMocks "pms/shared/cache/mocks"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/password"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	repo  *userMocks.MockUser
	jwt   *jwtMocks.MockJWT
	cache *cacheMocks.MockRedisCache
	kafka *kafkaMocks.MockClient
	svc   service.Auth
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  userMocks.NewMockUser(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		kafka: kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.JWT.ResetExpireMin = 30
	cfg.Kafka.Topics.Notification = "pms.notification.events"

	f.svc = service.New(f.repo, cfg, f.cache, f.kafka, mocks.NewOtel(), f.jwt)

	return f
}

// allowInvalidation accepts the background cache clean-up of user listings.
func (f fixture) allowInvalidation() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func activeUser(t *testing.T) userModel.User {
	t.Helper()

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		Email:    "frontdesk@hotel.com",
		Password: hash,
		Name:     "Front Desk",
		Role:     constant.RoleStaff,
		Active:   true,
	}
}

func claims(userID, tokenID string, ttl time.Duration) *jwt.Claims {
	return &jwt.Claims{
		UserID:  userID,
		TokenID: tokenID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates a staff account", func(t *testing.T) {
		f := newFixture(t)
		f.allowInvalidation()

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user userModel.User) error {
			assert.Equal(t, "new@hotel.com", user.Email)
			assert.Equal(t, constant.RoleStaff, user.Role)
			assert.Equal(t, constant.ContextSystem, user.CreatedBy)

			return nil
		})

		res, err := f.svc.Register(context.Background(), dto.RegisterRequest{Email: "New@Hotel.com", Password: "long-enough"})
		require.NoError(t, err)
		assert.Equal(t, constant.RoleStaff, res.Role)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), dto.RegisterRequest{Email: "new@hotel.com", Password: "long-enough"})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	user := activeUser(t)
	inactive := user
	inactive.Active = false

	tests := []struct {
		name     string
		req      dto.LoginRequest
		setup    func(f fixture)
		wantCode int
		wantMsg  string
	}{
		{
			name: "success",
			req:  dto.LoginRequest{Email: "FrontDesk@hotel.com", Password: "correct-horse"},
			setup: func(f fixture) {
				f.allowInvalidation()
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.jwt.EXPECT().GenerateTokenPair(user.ID, user.Email, user.Role).Return(&jwt.TokenPair{
					AccessToken:  "access",
					RefreshToken: "refresh",
					TokenType:    "Bearer",
					ExpiresIn:    3600,
				}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Contains(t, fields, userModel.FieldLastLogin)

						return nil
					})
			},
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "ghost@hotel.com", Password: "whatever"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid email or password",
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: user.Email, Password: "wrong-horse"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid email or password",
		},
		{
			name: "store unreachable",
			req:  dto.LoginRequest{Email: user.Email, Password: "correct-horse"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("dial tcp: connection refused"))
			},
			wantCode: http.StatusServiceUnavailable,
			wantMsg:  "authentication service unavailable",
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: user.Email, Password: "correct-horse"},
			setup: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Login(context.Background(), tt.req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.AccessToken)
			assert.Equal(t, "refresh", res.RefreshToken)
			assert.Equal(t, user.ID, res.User.ID)
			assert.NotNil(t, res.User.LastLogin)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates and revokes the used token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims("user-1", "rt-1", time.Hour), nil)
		f.cache.EXPECT().Exists(gomock.Any(), "auth:revoked:rt-1").Return(false, nil)
		f.jwt.EXPECT().RefreshTokens("refresh").Return(&jwt.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil)
		f.cache.EXPECT().Save(gomock.Any(), "auth:revoked:rt-1", "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ any, seconds int) error {
				assert.InDelta(t, 3600, seconds, 5)

				return nil
			})

		res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		require.NoError(t, err)
		assert.Equal(t, "a2", res.AccessToken)
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims("user-1", "rt-1", time.Hour), nil)
		f.cache.EXPECT().Exists(gomock.Any(), "auth:revoked:rt-1").Return(true, nil)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("junk", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "junk"})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes access and refresh tokens", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("access", jwt.AccessToken).Return(claims("user-1", "at-1", 10*time.Minute), nil)
		f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims("user-1", "rt-1", time.Hour), nil)
		f.cache.EXPECT().Save(gomock.Any(), "auth:revoked:at-1", "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ any, seconds int) error {
				assert.InDelta(t, 600, seconds, 5)

				return nil
			})
		f.cache.EXPECT().Save(gomock.Any(), "auth:revoked:rt-1", "user-1", gomock.Any()).Return(nil)

		err := f.svc.Logout(context.Background(), "access", dto.LogoutRequest{RefreshToken: "refresh"})
		assert.NoError(t, err)
	})

	t.Run("refresh token of another user is ignored", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("access", jwt.AccessToken).Return(claims("user-1", "at-1", 10*time.Minute), nil)
		f.jwt.EXPECT().ValidateToken("other", jwt.RefreshToken).Return(claims("user-2", "rt-9", time.Hour), nil)
		f.cache.EXPECT().Save(gomock.Any(), "auth:revoked:at-1", "user-1", gomock.Any()).Return(nil)

		err := f.svc.Logout(context.Background(), "access", dto.LogoutRequest{RefreshToken: "other"})
		assert.NoError(t, err)
	})

	t.Run("expired token needs no revocation", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("access", jwt.AccessToken).Return(claims("user-1", "at-1", -time.Minute), nil)

		assert.NoError(t, f.svc.Logout(context.Background(), "access", dto.LogoutRequest{}))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().ValidateToken("bad", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

		err := f.svc.Logout(context.Background(), "bad", dto.LogoutRequest{})
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuthService_Session(t *testing.T) {
	user := activeUser(t)

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Session(context.Background())
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("returns the current user", func(t *testing.T) {
		f := newFixture(t)
		expiry := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user.ID)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenExpiry, expiry)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		res, err := f.svc.Session(ctx)
		require.NoError(t, err)
		assert.Equal(t, user.Email, res.User.Email)
		require.NotNil(t, res.ExpiresAt)
		assert.Equal(t, expiry, *res.ExpiresAt)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	user := activeUser(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user.ID)

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "brand-new-pass"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("stores the new hash", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				hash, _ := fields[userModel.FieldPassword].(string)
				assert.NoError(t, password.Verify("brand-new-pass", hash))
				assert.Equal(t, user.ID, fields[constant.FieldModifiedBy])

				return nil
			})

		err := f.svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "correct-horse", NewPassword: "brand-new-pass"})
		assert.NoError(t, err)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	user := activeUser(t)

	t.Run("unknown email is silent", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)

		assert.NoError(t, f.svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "ghost@hotel.com"}))
	})

	t.Run("stores a token and notifies", func(t *testing.T) {
		f := newFixture(t)
		sent := make(chan model.Event, 1)

		var token string

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), user.ID, 1800).DoAndReturn(
			func(_ context.Context, key string, _ any, _ int) error {
				assert.Contains(t, key, "auth:reset:")
				token = key[len("auth:reset:"):]

				return nil
			})
		f.kafka.EXPECT().SendMessages(gomock.Any(), "pms.notification.events", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, messages ...kafka.Message) error {
				event, _ := messages[0].Value.(model.Event)
				sent <- event

				return nil
			})

		require.NoError(t, f.svc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: user.Email}))

		select {
		case event := <-sent:
			assert.Equal(t, model.EventPasswordResetRequested, event.Type)
			assert.Equal(t, user.Email, event.Email)
			assert.Equal(t, token, event.Token)
			assert.WithinDuration(t, event.OccurredAt.Add(30*time.Minute), event.ExpiresAt, time.Second)
		case <-time.After(time.Second):
			t.Fatal("notification was not published")
		}
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "auth:reset:tok", gomock.Any()).Return(cache.Nil)

		err := f.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: "tok", NewPassword: "brand-new-pass"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("sets the password and burns the token", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "auth:reset:tok", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				*value.(*string) = "user-1"

				return nil
			})
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Delete(gomock.Any(), "auth:reset:tok").Return(nil)

		err := f.svc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: "tok", NewPassword: "brand-new-pass"})
		assert.NoError(t, err)
	})
}

func TestAuthService_IsRevoked(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Exists(gomock.Any(), "auth:revoked:at-1").Return(true, nil)
	f.cache.EXPECT().Exists(gomock.Any(), "auth:revoked:at-2").Return(false, errors.New("redis down"))

	revoked, err := f.svc.IsRevoked(context.Background(), "at-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = f.svc.IsRevoked(context.Background(), "at-2")
	assert.Error(t, err)
}

func TestAuthService_Login_UpgradesWeakHash(t *testing.T) {
	weak, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := activeUser(t)
	user.Password = string(weak)

	f := newFixture(t)
	f.allowInvalidation()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
	f.jwt.EXPECT().GenerateTokenPair(user.ID, user.Email, user.Role).Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			hashed, ok := fields[userModel.FieldPassword].(string)
			require.True(t, ok)
			assert.NoError(t, password.Verify("correct-horse", hashed))
			assert.False(t, password.NeedsRehash(hashed))

			return nil
		})

	_, err = f.svc.Login(context.Background(), dto.LoginRequest{Email: user.Email, Password: "correct-horse"})
	require.NoError(t, err)
}
