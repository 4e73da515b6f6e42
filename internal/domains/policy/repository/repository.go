package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/policy/model"
	gDto "resort/shared/dto"
	"resort/shared/ordering"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Policy interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Policy, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Policy, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	EntriesTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]ordering.Entry, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.Policy, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Policy) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ReorderTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Policy]
}

func New(db *postgres.Connection, otel otel.Otel) Policy {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Policy](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
