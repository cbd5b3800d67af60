package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"seatsafe/infras/otel"
	"seatsafe/infras/postgres"
	"seatsafe/internal/domains/payout/model"
	gDto "seatsafe/shared/dto"
	gRepo "seatsafe/shared/repository"
)

type Payout interface {
	Insert(ctx context.Context, model model.PayoutRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PayoutRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PayoutRequest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PayoutRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payout {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PayoutRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
