package service

import (
	"context"
	"fmt"

	"pms/config"
	"pms/infras/otel"
	"pms/internal/domains/user/model"
	"pms/internal/domains/user/model/dto"
	"pms/internal/domains/user/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/password"
	gRepo "pms/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
	cacheCountUser  = "user:count"

	errUserNotFound = "user not found"
	errLastAdmin    = "at least one active admin is required"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.ContextSystem
	}

	exists, err := s.repo.Exist(ctx, dto.EmailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	created := req.ToModel(user, hashedPassword)

	if err = s.repo.Insert(ctx, created); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("email already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(created)

	return res, nil
}

// cached reads key through the cache, loading and storing on a miss. The store happens
// in the background so a slow cache never delays the response.
func cached[T any](ctx context.Context, s *serviceImpl, key string, load func(context.Context) (T, error)) (T, error) {
	var res T

	if err := s.cache.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return res, nil
	}

	res, err := load(ctx)
	if err != nil {
		return res, err
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cached(ctx, s, shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter), func(ctx context.Context) (page dto.GetUsersResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return page, fmt.Errorf("failed to count users: %w", err)
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get users")

			return page, fmt.Errorf("failed to get users: %w", err)
		}

		page.FromModels(models, total, req.Limit)

		return page, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cached(ctx, s, shared.BuildCacheKeyWithQuery(cacheCountUser, req, filter), func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count users")

			return 0, fmt.Errorf("failed to count users: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cached(ctx, s, shared.BuildCacheKey(cacheGetUser, id), func(ctx context.Context) (found dto.UserResponse, err error) {
		user, err := s.find(ctx, id)
		if err != nil {
			return found, err
		}

		found.FromModel(user)

		return found, nil
	})
}

// find loads a user by id, mapping absence to a 404.
func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound(errUserNotFound) // nolint:wrapcheck
	}

	return user, nil
}

// keepAnAdmin refuses changes that would leave no active admin able to manage accounts.
func (s *serviceImpl) keepAnAdmin(ctx context.Context, target model.User, losesAdmin bool) error {
	if !losesAdmin || target.Role != constant.RoleAdmin || !target.Active {
		return nil
	}

	admins, err := s.repo.Count(ctx, dto.ActiveAdminsFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count active admins")

		return fmt.Errorf("failed to count active admins: %w", err)
	}

	if admins <= 1 {
		return failure.Conflict(errLastAdmin) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	deactivating := req.Active != nil && !*req.Active

	if actor == id && deactivating {
		return failure.BadRequestFromString("cannot deactivate your own account") // nolint:wrapcheck
	}

	target, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	demoting := req.Role != constant.Empty && req.Role != constant.RoleAdmin
	if err = s.keepAnAdmin(ctx, target, demoting || deactivating); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, actor), filter); err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if actor, _ := ctx.Value(constant.ContextKeyUserID).(string); actor == id {
		return failure.BadRequestFromString("cannot delete your own account") // nolint:wrapcheck
	}

	target, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.keepAnAdmin(ctx, target, true); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete user from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
		shared.InvalidateCaches(c, s.cache, cacheCountUser)
	}()
}
