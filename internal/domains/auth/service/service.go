package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pms/config"
	"pms/infras/jwt"
	"pms/infras/kafka"
	"pms/infras/otel"
	"pms/internal/domains/auth/model"
	"pms/internal/domains/auth/model/dto"
	userModel "pms/internal/domains/user/model"
	userDto "pms/internal/domains/user/model/dto"
	userRepo "pms/internal/domains/user/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	"pms/shared/failure"
	"pms/shared/password"
	gRepo "pms/shared/repository"
	"pms/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	errInvalidCredentials = "invalid email or password"
	errUnavailable        = "authentication service unavailable"
	errInvalidResetToken  = "reset token is invalid or has expired"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (userDto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, accessToken string, req dto.LogoutRequest) error
	Session(ctx context.Context) (dto.SessionResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafka,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res userDto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, userDto.EmailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	createReq := req.ToCreateUserRequest()
	user := createReq.ToModel(constant.ContextSystem, hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("email already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidateUsers(ctx, constant.Empty)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, userDto.EmailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to reach user store")

		return res, failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	if user.ID == constant.Empty {
		password.Burn(req.Password)
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString(errInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(errInvalidCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	lastLogin := dto.UpdateLastLoginRequest{LastLogin: now}

	if password.NeedsRehash(user.Password) {
		if hashed, err := password.Hash(req.Password); err == nil {
			lastLogin.Password = &hashed
		}
	}

	if err := s.userRepo.Update(ctx, shared.TransformFields(lastLogin, user.ID), shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	} else {
		user.LastLogin = &now
		s.invalidateUsers(ctx, user.ID)
	}

	res.FromTokenPair(tokenPair)
	res.User.FromModel(user)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("invalid refresh token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	revoked, err := s.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return res, failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	if revoked {
		return res, failure.Unauthorized("refresh token has been revoked") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	// Refresh tokens are single use.
	if err := s.revoke(ctx, claims); err != nil {
		log.Warn().Err(err).Str("token_id", claims.TokenID).Msg("failed to revoke used refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context, accessToken string, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(accessToken, jwt.AccessToken)
	if err != nil {
		return failure.Unauthorized("invalid access token") // nolint:wrapcheck
	}

	if err = s.revoke(ctx, claims); err != nil {
		log.Error().Err(err).Msg("failed to revoke access token")

		return failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	if req.RefreshToken == constant.Empty {
		return nil
	}

	refreshClaims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil || refreshClaims.UserID != claims.UserID {
		log.Warn().Str("user_id", claims.UserID).Msg("ignoring foreign or invalid refresh token on logout")

		return nil
	}

	if err := s.revoke(ctx, refreshClaims); err != nil {
		log.Warn().Err(err).Msg("failed to revoke refresh token")
	}

	return nil
}

func (s *serviceImpl) Session(ctx context.Context) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.Session")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("no active session") // nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get session user")

		return res, failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	if user.ID == constant.Empty || !user.Active {
		return res, failure.Unauthorized("no active session") // nolint:wrapcheck
	}

	res.User.FromModel(user)

	if expiresAt, ok := ctx.Value(constant.ContextKeyTokenExpiry).(time.Time); ok {
		res.ExpiresAt = &expiresAt
	}

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	return s.setPassword(ctx, user.ID, req.NewPassword, userID)
}

func (s *serviceImpl) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.ForgotPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, userDto.EmailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to reach user store")

		return failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	// Unknown addresses get the same answer as known ones.
	if user.ID == constant.Empty || !user.Active {
		log.Info().Str("email", req.Email).Msg("password reset requested for unknown or inactive account")

		return nil
	}

	token := uuid.NewString()
	ttl := time.Duration(s.cfg.JWT.ResetExpireMin) * time.Minute

	if err = s.cache.Save(ctx, shared.BuildCacheKey(constant.CacheKeyResetToken, token), user.ID, int(ttl.Seconds())); err != nil {
		log.Error().Err(err).Msg("failed to store reset token")

		return failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	now := timezone.Now()
	event := model.Event{
		Type:       model.EventPasswordResetRequested,
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Token:      token,
		ExpiresAt:  now.Add(ttl),
		OccurredAt: now,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Notification, kafka.Message{Key: user.ID, Value: event}); err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to publish password reset event")
		}
	}()

	return nil
}

func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Auth.ResetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(constant.CacheKeyResetToken, req.Token)

	var userID string
	if err = s.cache.Get(ctx, key, &userID); err != nil {
		if cache.IsMiss(err) {
			return failure.BadRequestFromString(errInvalidResetToken) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to read reset token")

		return failure.ServiceUnavailable(errUnavailable) // nolint:wrapcheck
	}

	exists, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exists {
		return failure.BadRequestFromString(errInvalidResetToken) // nolint:wrapcheck
	}

	if err = s.setPassword(ctx, userID, req.NewPassword, userID); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Msg("failed to delete used reset token")
	}

	return nil
}

func (s *serviceImpl) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := s.cache.Exists(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID))
	if err != nil {
		log.Error().Err(err).Str("token_id", tokenID).Msg("failed to check token revocation")

		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}

	return revoked, nil
}

// revoke blocks the token id until the token would have expired anyway.
func (s *serviceImpl) revoke(ctx context.Context, claims *jwt.Claims) error {
	remaining := claims.Remaining()
	if remaining <= 0 {
		return nil
	}

	seconds := max(int(remaining.Seconds()), 1)

	if err := s.cache.Save(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, claims.TokenID), claims.UserID, seconds); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}

func (s *serviceImpl) setPassword(ctx context.Context, userID, newPassword, actor string) error {
	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	err = s.userRepo.Update(ctx, shared.TransformFields(updatePassword, actor), shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// invalidateUsers clears cached admin user listings touched by auth writes.
func (s *serviceImpl) invalidateUsers(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(userModel.EntityName+":get", id)); err != nil {
				log.Error().Err(err).Msg("failed to delete user from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, userModel.EntityName+":gets")
		shared.InvalidateCaches(c, s.cache, userModel.EntityName+":count")
	}()
}
