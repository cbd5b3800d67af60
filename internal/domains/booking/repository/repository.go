package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"seatsafe/infras/otel"
	"seatsafe/infras/postgres"
	"seatsafe/internal/domains/booking/model"
	"seatsafe/shared/constant"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/logger"
	gRepo "seatsafe/shared/repository"
	"seatsafe/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateStatus(ctx context.Context, id, current, target, actorID string) (bool, error)
	TakenSlots(ctx context.Context, organizationID string, day time.Time) ([]time.Time, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatus moves a booking between statuses in a single guarded statement.
// The expected current status is part of the WHERE clause, so of two racing
// transitions that both read the same status only one updates a row; the loser
// sees zero rows affected and gets false back.
func (repo *repositoryImpl) UpdateStatus(ctx context.Context, id, current, target, actorID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateStatus")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :target, %s = :modified_at, %s = :modified_by WHERE %s = :id AND %s = :current",
		model.TableName,
		model.FieldStatus, constant.FieldModifiedAt, constant.FieldModifiedBy,
		model.FieldID, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          id,
		"current":     current,
		"target":      target,
		"modified_at": timezone.Now(),
		"modified_by": actorID,
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update status (%s): %w", model.EntityName, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return rows > 0, nil
}

// TakenSlots returns the scheduled start times of every non-cancelled booking
// for the organization on the given calendar day. Cancelled bookings do not
// occupy a slot.
func (repo *repositoryImpl) TakenSlots(ctx context.Context, organizationID string, day time.Time) ([]time.Time, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TakenSlots")
	defer scope.End()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = :organization_id AND %s >= :day_start AND %s < :day_end AND %s != :cancelled",
		model.FieldScheduledAt, model.TableName,
		model.FieldOrganizationID, model.FieldScheduledAt, model.FieldScheduledAt, model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"organization_id": organizationID,
		"day_start":       dayStart,
		"day_end":         dayStart.AddDate(0, 0, 1),
		"cancelled":       model.StatusCancelled,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var slots []time.Time

	err = prepare.SelectContext(ctx, &slots, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get taken slots (%s): %w", model.EntityName, err)
	}

	return slots, nil
}
