package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/amenity/model"
	gDto "resort/shared/dto"
	"resort/shared/ordering"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Amenity interface {
	Insert(ctx context.Context, model model.Amenity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Amenity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Amenity, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type HotelAmenity interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.HotelAmenity, error)
	EntriesTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]ordering.Entry, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.HotelAmenity, error)
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.HotelAmenity) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	ReorderTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Amenity]
}

func New(db *postgres.Connection, otel otel.Otel) Amenity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Amenity](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type linkRepositoryImpl struct {
	gRepo.Repository[model.HotelAmenity]
}

func NewHotelAmenity(db *postgres.Connection, otel otel.Otel) HotelAmenity {
	return &linkRepositoryImpl{
		Repository: gRepo.NewRepository[model.HotelAmenity](model.LinkEntityName, model.LinkTableName, model.LinkFieldID, db, otel),
	}
}
