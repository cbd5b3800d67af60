package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"seatsafe/infras/otel"
	"seatsafe/infras/postgres"
	"seatsafe/internal/domains/organization/model"
	gDto "seatsafe/shared/dto"
	gRepo "seatsafe/shared/repository"
)

type Organization interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Organization, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Organization]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Organization {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Organization](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
