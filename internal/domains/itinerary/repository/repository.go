package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/itinerary/model"
	gDto "resort/shared/dto"
	"resort/shared/ordering"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Itinerary interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Itinerary, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Itinerary, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	EntriesTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]ordering.Entry, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.Itinerary, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Itinerary) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ReorderTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Itinerary]
}

func New(db *postgres.Connection, otel otel.Otel) Itinerary {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Itinerary](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
