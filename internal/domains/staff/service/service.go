package service

import (
	"context"
	"fmt"
	"strings"

	"pms/config"
	"pms/infras/otel"
	"pms/infras/s3"
	"pms/internal/domains/staff/model"
	"pms/internal/domains/staff/model/dto"
	"pms/internal/domains/staff/repository"
	"pms/shared"
	"pms/shared/base64"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	gRepo "pms/shared/repository"
	"pms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"

	avatarDirectory = "avatars"

	errStaffNotFound = "staff member not found"
)

type Staff interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Staff
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Staff, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Staff {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// uploadAvatar stores a base64 data URI and returns its public URL.
func (s *serviceImpl) uploadAvatar(ctx context.Context, avatar string) (string, error) {
	if avatar == constant.Empty {
		return constant.Empty, nil
	}

	contentType, data, err := base64.Decode(avatar)
	if err != nil {
		return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
	}

	extension := contentType[strings.LastIndex(contentType, "/")+1:]

	url, err := s.s3.UploadFileBytes(ctx, avatarDirectory, shared.ObjectName("avatar."+extension), contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload avatar")

		return constant.Empty, fmt.Errorf("failed to upload avatar: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	startDate, err := timezone.ParseDate(req.StartDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	avatarURL, err := s.uploadAvatar(ctx, req.Avatar)
	if err != nil {
		return res, err
	}

	staff := req.ToModel(user, startDate, avatarURL)

	if err = s.repo.Insert(ctx, staff); err != nil {
		if avatarURL != constant.Empty {
			_ = s.s3.DeleteByURL(ctx, avatarURL)
		}

		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflictf("staff member with email %s already exists", staff.Email) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create staff member")

		return res, fmt.Errorf("failed to create staff member: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(staff)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStaff, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Staff, error) {
	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff member")

		return staff, fmt.Errorf("failed to get staff member: %w", err)
	}

	if staff.ID == constant.Empty {
		return staff, failure.NotFound(errStaffNotFound) // nolint:wrapcheck
	}

	return staff, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff member")

		return res, nil
	}

	staff, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff member to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	req.Normalize()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)

	if req.StartDate != constant.Empty {
		startDate, err := timezone.ParseDate(req.StartDate)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		fields[model.FieldStartDate] = startDate
	}

	avatarURL, err := s.uploadAvatar(ctx, req.Avatar)
	if err != nil {
		return err
	}

	if avatarURL != constant.Empty {
		fields[model.FieldAvatar] = avatarURL
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if avatarURL != constant.Empty {
			_ = s.s3.DeleteByURL(ctx, avatarURL)
		}

		if gRepo.IsUniqueViolation(err) {
			return failure.Conflictf("staff member with email %s already exists", req.Email) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update staff member")

		return fmt.Errorf("failed to update staff member: %w", err)
	}

	if avatarURL != constant.Empty && current.Avatar != constant.Empty {
		if err := s.s3.DeleteByURL(ctx, current.Avatar); err != nil {
			log.Warn().Err(err).Str("avatar", current.Avatar).Msg("failed to delete previous avatar")
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Staff.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete staff member")

		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	if staff.Avatar != constant.Empty {
		if err := s.s3.DeleteByURL(ctx, staff.Avatar); err != nil {
			log.Warn().Err(err).Str("avatar", staff.Avatar).Msg("failed to delete avatar")
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStaff, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete staff member from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()
}
