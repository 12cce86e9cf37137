package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pms/infras/database"
	"pms/infras/otel"
	"pms/internal/domains/expense/model"
	gDto "pms/shared/dto"
	gRepo "pms/shared/repository"
)

type Expense interface {
	Insert(ctx context.Context, model model.Expense) error
	InsertBulk(ctx context.Context, models []model.Expense) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Expense, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Expense, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Expense]
}

func New(db *database.Connection, otel otel.Otel) Expense {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Expense](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
