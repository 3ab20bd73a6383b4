package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"apelcal/infras/otel"
	"apelcal/infras/postgres"
	"apelcal/internal/domains/availability/model"
	gDto "apelcal/shared/dto"
	gRepo "apelcal/shared/repository"
)

type WeeklyRule interface {
	Insert(ctx context.Context, model model.WeeklyRule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.WeeklyRule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WeeklyRule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type DateOverride interface {
	Insert(ctx context.Context, model model.DateOverride) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DateOverride, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DateOverride, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type weeklyRepositoryImpl struct {
	gRepo.Repository[model.WeeklyRule]
	db   *postgres.Connection
	otel otel.Otel
}

func NewWeekly(db *postgres.Connection, otel otel.Otel) WeeklyRule {
	return &weeklyRepositoryImpl{
		Repository: gRepo.NewRepository[model.WeeklyRule](model.WeeklyEntityName, model.WeeklyTableName, model.WeeklyFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type overrideRepositoryImpl struct {
	gRepo.Repository[model.DateOverride]
	db   *postgres.Connection
	otel otel.Otel
}

func NewOverride(db *postgres.Connection, otel otel.Otel) DateOverride {
	return &overrideRepositoryImpl{
		Repository: gRepo.NewRepository[model.DateOverride](model.OverrideEntityName, model.OverrideTableName, model.OverrideFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
