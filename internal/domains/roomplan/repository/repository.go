package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/roomplan/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type RoomPlan interface {
	Insert(ctx context.Context, model model.RoomPlan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomPlan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomPlan, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomPlan]
}

func New(db *postgres.Connection, otel otel.Otel) RoomPlan {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomPlan](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
