package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/safetyfeature/model"
	gDto "resort/shared/dto"
	"resort/shared/ordering"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type SafetyFeature interface {
	Insert(ctx context.Context, model model.SafetyFeature) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.SafetyFeature, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.SafetyFeature, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type HotelSafetyFeature interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HotelSafetyFeature, error)
	EntriesTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]ordering.Entry, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.HotelSafetyFeature, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.HotelSafetyFeature) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ReorderTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.SafetyFeature]
}

func New(db *postgres.Connection, otel otel.Otel) SafetyFeature {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.SafetyFeature](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type linkRepositoryImpl struct {
	gRepo.Repository[model.HotelSafetyFeature]
}

func NewHotelSafetyFeature(db *postgres.Connection, otel otel.Otel) HotelSafetyFeature {
	return &linkRepositoryImpl{
		Repository: gRepo.NewRepository[model.HotelSafetyFeature](model.LinkEntityName, model.LinkTableName, model.LinkFieldID, db, otel),
	}
}
