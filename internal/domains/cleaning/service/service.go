package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"pms/config"
	"pms/infras/otel"
	"pms/internal/domains/cleaning/model"
	"pms/internal/domains/cleaning/model/dto"
	"pms/internal/domains/cleaning/repository"
	roomModel "pms/internal/domains/room/model"
	roomRepo "pms/internal/domains/room/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCleaning    = "cleaning:get"
	cacheGetAllCleaning = "cleaning:gets"
	cacheCountCleaning  = "cleaning:count"

	errTaskNotFound = "cleaning task not found"
)

var roomOrder = gDto.QueryParams{SortBy: roomModel.TableName + "." + roomModel.FieldNumber, SortDir: gDto.SortDirAsc}

type Cleaning interface {
	Create(ctx context.Context, req dto.CreateCleaningTaskRequest) (dto.CleaningTaskResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCleaningTasksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CleaningTaskResponse, error)
	Update(ctx context.Context, req dto.UpdateCleaningTaskRequest, id string) error
	Advance(ctx context.Context, id string) (dto.CleaningTaskResponse, error)
	Delete(ctx context.Context, id string) error
	EligibleRooms(ctx context.Context) (dto.EligibleRoomsResponse, error)
	CreateForCheckout(ctx context.Context, roomID, bookingID string) (bool, error)
}

type serviceImpl struct {
	repo     repository.Cleaning
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Cleaning, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Cleaning {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) findRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for cleaning task")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCleaningTaskRequest) (res dto.CleaningTaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	scheduledFor, err := dto.ParseSchedule(req.ScheduledFor)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	room, err := s.findRoom(ctx, req.RoomID)
	if err != nil {
		return res, err
	}

	if !room.Cleanable() {
		return res, failure.Conflictf("room %s cannot be cleaned while %s", room.Number, room.Status) // nolint:wrapcheck
	}

	task := req.ToModel(user, room, scheduledFor)

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create cleaning task")

		return res, fmt.Errorf("failed to create cleaning task: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(task)

	return res, nil
}

// CreateForCheckout opens a pending task after a checkout unless the room already has an open one.
func (s *serviceImpl) CreateForCheckout(ctx context.Context, roomID, bookingID string) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.CreateForCheckout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, dto.OpenTaskFilter(roomID))
	if err != nil {
		return false, fmt.Errorf("failed to check open cleaning tasks: %w", err)
	}

	if exist {
		log.Info().Str("roomID", roomID).Msg("room already has an open cleaning task")

		return false, nil
	}

	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return false, err
	}

	req := dto.CreateCleaningTaskRequest{
		Priority: model.PriorityHigh,
		Notes:    fmt.Sprintf("Checkout of booking %s", bookingID),
	}

	task := req.ToModel(constant.ContextSystem, room, nil)

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create checkout cleaning task")

		return false, fmt.Errorf("failed to create cleaning task: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return true, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCleaningTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCleaning, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cleaning tasks")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count cleaning tasks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning tasks")

		return res, fmt.Errorf("failed to get cleaning tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cleaning tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCleaning, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cleaning tasks")

		return res, fmt.Errorf("failed to count cleaning tasks: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cleaning task count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.CleaningTask, error) {
	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get cleaning task")

		return task, fmt.Errorf("failed to get cleaning task: %w", err)
	}

	if task.ID == constant.Empty {
		return task, failure.NotFound(errTaskNotFound) // nolint:wrapcheck
	}

	return task, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CleaningTaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCleaning, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cleaning task")

		return res, nil
	}

	task, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cleaning task to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCleaningTaskRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	scheduledFor, err := dto.ParseSchedule(req.ScheduledFor)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	task, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)

	if scheduledFor != nil {
		if task.Status != model.StatusPending && task.Status != model.StatusScheduled {
			return failure.BadRequestFromString("only pending or scheduled tasks can be rescheduled") // nolint:wrapcheck
		}

		fields[model.FieldScheduledFor] = *scheduledFor
		fields[model.FieldStatus] = model.StatusScheduled
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update cleaning task")

		return fmt.Errorf("failed to update cleaning task: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Advance moves a task one step along pending|scheduled, in_progress, completed, verified.
// Verifying a task frees a room that is still marked for cleaning.
func (s *serviceImpl) Advance(ctx context.Context, id string) (res dto.CleaningTaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.Advance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	task, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	status, ok := model.Next(task.Status)
	if !ok {
		return res, failure.BadRequestFromString(fmt.Sprintf("cleaning task is already %s", task.Status)) // nolint:wrapcheck
	}

	now := timezone.Now()
	metadata := gDto.NewMetadata(user)

	fields := map[string]any{
		model.FieldStatus:        status,
		model.StampField(status): now,
		constant.FieldModifiedAt: metadata.ModifiedAt,
		constant.FieldModifiedBy: user,
	}

	err = s.repo.Transaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update cleaning task: %w", err)
		}

		if status != model.StatusVerified {
			return nil
		}

		roomFilter := shared.FilterByID(task.RoomID, roomModel.FieldID, roomModel.TableName)
		roomFilter.Add(gDto.Filter{Field: roomModel.FieldStatus, Value: roomModel.StatusCleaning, Operator: gDto.FilterOperatorEq, Table: roomModel.TableName})

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			constant.FieldModifiedAt: metadata.ModifiedAt,
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, roomFields, roomFilter); err != nil {
			return fmt.Errorf("failed to release room: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to advance cleaning task")

		return res, err
	}

	task.Status = status

	switch status {
	case model.StatusInProgress:
		task.StartedAt = &now
	case model.StatusCompleted:
		task.CompletedAt = &now
	case model.StatusVerified:
		task.VerifiedAt = &now
	}

	task.ModifiedAt = metadata.ModifiedAt
	task.ModifiedBy = user

	s.invalidate(ctx, id)

	if status == model.StatusVerified {
		go func() {
			c := context.WithoutCancel(ctx)

			shared.InvalidateCaches(c, s.cache, constant.CacheKeyRoom)
			shared.InvalidateCaches(c, s.cache, constant.CacheKeyAvailability)
		}()
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check if cleaning task exists: %w", err)
	}

	if !exist {
		return failure.NotFound(errTaskNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete cleaning task")

		return fmt.Errorf("failed to delete cleaning task: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// EligibleRooms lists the rooms a task may be created for.
func (s *serviceImpl) EligibleRooms(ctx context.Context) (res dto.EligibleRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cleaning.EligibleRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filter.Add(gDto.Filter{
		ArgName:  "cleanable_status",
		Field:    roomModel.FieldStatus,
		Value:    []string{roomModel.StatusAvailable, roomModel.StatusOccupied, roomModel.StatusCleaning},
		Operator: gDto.FilterOperatorIn,
		Table:    roomModel.TableName,
	})

	rooms, err := s.roomRepo.GetAll(ctx, roomOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms for cleaning")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms)

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCleaning, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete cleaning task from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCleaning)
		shared.InvalidateCaches(c, s.cache, cacheCountCleaning)
		shared.InvalidateCaches(c, s.cache, constant.CacheKeyDashboard)
	}()
}
