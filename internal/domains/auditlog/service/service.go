package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"seatsafe/internal/domains/auditlog/model"
	"seatsafe/internal/domains/auditlog/model/dto"
	"seatsafe/internal/domains/auditlog/repository"
	"seatsafe/shared/constant"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/failure"
	"seatsafe/shared/timezone"

	"seatsafe/infras/otel"
)

type AuditLog interface {
	Append(ctx context.Context, bookingID, action string, oldStatus, newStatus *string, actor gDto.Actor) error
	ListForBooking(ctx context.Context, bookingID string) (dto.GetEntriesResponse, error)
}

type serviceImpl struct {
	repo repository.AuditLog
	otel otel.Otel
}

func New(repo repository.AuditLog, otel otel.Otel) AuditLog {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// Append writes one immutable entry for a booking mutation.
func (s *serviceImpl) Append(ctx context.Context, bookingID, action string, oldStatus, newStatus *string, actor gDto.Actor) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auditlog.Append")
	defer scope.End()
	defer scope.TraceIfError(err)

	entry := model.Entry{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Action:    action,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		CreatedAt: timezone.Now(),
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Str("action", action).Msg("failed to append audit entry")

		return failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	return nil
}

// ListForBooking returns the booking's trail newest-first. Cardinality per
// booking is tiny, so the result is unpaginated.
func (s *serviceImpl) ListForBooking(ctx context.Context, bookingID string) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auditlog.ListForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}

	entries, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to list audit entries")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	res.FromModels(entries)

	return res, nil
}
