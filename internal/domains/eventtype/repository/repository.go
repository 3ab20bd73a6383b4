package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"apelcal/infras/otel"
	"apelcal/infras/postgres"
	"apelcal/internal/domains/eventtype/model"
	gDto "apelcal/shared/dto"
	gRepo "apelcal/shared/repository"
)

type EventType interface {
	Insert(ctx context.Context, model model.EventType) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EventType, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EventType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type EventTypeDate interface {
	InsertBulk(ctx context.Context, models []model.EventTypeDate) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EventTypeDate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.EventType]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) EventType {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.EventType](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type dateRepositoryImpl struct {
	gRepo.Repository[model.EventTypeDate]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDate(db *postgres.Connection, otel otel.Otel) EventTypeDate {
	return &dateRepositoryImpl{
		Repository: gRepo.NewRepository[model.EventTypeDate](model.DateEntityName, model.DateTableName, model.DateFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
