package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pms/infras/database"
	"pms/infras/otel"
	"pms/internal/domains/cleaning/model"
	gDto "pms/shared/dto"
	gRepo "pms/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Cleaning interface {
	Transaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, model model.CleaningTask) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CleaningTask, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CleaningTask, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CleaningTask]
}

func New(db *database.Connection, otel otel.Otel) Cleaning {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CleaningTask](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
