package service

import (
	"context"
	"fmt"

	"pms/config"
	"pms/infras/otel"
	"pms/infras/s3"
	"pms/internal/domains/expense/model"
	"pms/internal/domains/expense/model/dto"
	"pms/internal/domains/expense/repository"
	"pms/shared"
	"pms/shared/cache"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/failure"
	"pms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetExpense     = "expense:get"
	cacheGetAllExpense  = "expense:gets"
	cacheCountExpense   = "expense:count"
	cacheSummaryExpense = "expense:summary"

	receiptDirectory = "receipts"

	errExpenseNotFound = "expense not found"
)

type Expense interface {
	Create(ctx context.Context, req dto.CreateExpenseRequest) (dto.ExpenseResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetExpensesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ExpenseResponse, error)
	Update(ctx context.Context, req dto.UpdateExpenseRequest, id string) error
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context, period dto.Period) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Expense
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Expense, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Expense {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateExpenseRequest) (res dto.ExpenseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expense.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Amount <= 0 {
		return res, failure.BadRequestFromString("amount must be greater than 0") // nolint:wrapcheck
	}

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	receiptURL := constant.Empty
	if req.Receipt != nil {
		receiptURL, err = s.s3.UploadFile(ctx, receiptDirectory, req.Receipt, shared.ObjectName(req.Receipt.Filename))
		if err != nil {
			log.Error().Err(err).Msg("failed to upload receipt")

			return res, fmt.Errorf("failed to upload receipt: %w", err)
		}
	}

	expense := req.ToModel(user, date, receiptURL)

	if err = s.repo.Insert(ctx, expense); err != nil {
		if receiptURL != constant.Empty {
			_ = s.s3.DeleteByURL(ctx, receiptURL)
		}

		log.Error().Err(err).Msg("failed to create expense")

		return res, fmt.Errorf("failed to create expense: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(expense)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetExpensesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expense.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllExpense, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for expenses")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count expenses: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expenses")

		return res, fmt.Errorf("failed to get expenses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save expenses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expense.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountExpense, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count expenses")

		return res, fmt.Errorf("failed to count expenses: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save expense count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Expense, error) {
	expense, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get expense")

		return expense, fmt.Errorf("failed to get expense: %w", err)
	}

	if expense.ID == constant.Empty {
		return expense, failure.NotFound(errExpenseNotFound) // nolint:wrapcheck
	}

	return expense, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ExpenseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expense.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetExpense, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for expense")

		return res, nil
	}

	expense, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(expense)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save expense to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateExpenseRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expense.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if req.Amount != nil && *req.Amount <= 0 {
		return failure.BadRequestFromString("amount must be greater than 0") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	fields := shared.TransformFields(req, user)

	if req.Date != constant.Empty {
		date, err := timezone.ParseDate(req.Date)
		if err != nil {
			return failure.BadRequest(err) // nolint:wrapcheck
		}

		fields[model.FieldDate] = date
	}

	receiptURL := constant.Empty
	if req.Receipt != nil {
		receiptURL, err = s.s3.UploadFile(ctx, receiptDirectory, req.Receipt, shared.ObjectName(req.Receipt.Filename))
		if err != nil {
			return fmt.Errorf("failed to upload receipt: %w", err)
		}

		fields[model.FieldReceipt] = receiptURL
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if receiptURL != constant.Empty {
			_ = s.s3.DeleteByURL(ctx, receiptURL)
		}

		log.Error().Err(err).Msg("failed to update expense")

		return fmt.Errorf("failed to update expense: %w", err)
	}

	if receiptURL != constant.Empty && current.Receipt != constant.Empty {
		if err := s.s3.DeleteByURL(ctx, current.Receipt); err != nil {
			log.Warn().Err(err).Str("receipt", current.Receipt).Msg("failed to delete previous receipt")
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expense.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	expense, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete expense")

		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if expense.Receipt != constant.Empty {
		if err := s.s3.DeleteByURL(ctx, expense.Receipt); err != nil {
			log.Warn().Err(err).Str("receipt", expense.Receipt).Msg("failed to delete receipt")
		}
	}

	s.invalidate(ctx, id)

	return nil
}

// Summary totals the expenses of a period per category.
func (s *serviceImpl) Summary(ctx context.Context, period dto.Period) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Expense.Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter, err := dto.PeriodFilter(period)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheSummaryExpense, period.From, period.To)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for expense summary")

		return res, nil
	}

	expenses, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter, model.FieldCategory, model.FieldAmount)
	if err != nil {
		log.Error().Err(err).Msg("failed to get expenses for summary")

		return res, fmt.Errorf("failed to get expenses: %w", err)
	}

	res.From = period.From
	res.To = period.To
	res.Categories, res.Total = model.Summarize(expenses)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save expense summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetExpense, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete expense from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllExpense)
		shared.InvalidateCaches(c, s.cache, cacheCountExpense)
		shared.InvalidateCaches(c, s.cache, cacheSummaryExpense)
	}()
}
