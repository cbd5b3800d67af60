package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"seatsafe/config"
	"seatsafe/infras/otel"
	auditModel "seatsafe/internal/domains/auditlog/model"
	auditDto "seatsafe/internal/domains/auditlog/model/dto"
	auditService "seatsafe/internal/domains/auditlog/service"
	"seatsafe/internal/domains/booking/model"
	"seatsafe/internal/domains/booking/model/dto"
	"seatsafe/internal/domains/booking/repository"
	catalogModel "seatsafe/internal/domains/catalog/model"
	catalogRepo "seatsafe/internal/domains/catalog/repository"
	"seatsafe/internal/domains/notification"
	orgModel "seatsafe/internal/domains/organization/model"
	orgRepo "seatsafe/internal/domains/organization/repository"
	"seatsafe/shared"
	"seatsafe/shared/cache"
	"seatsafe/shared/constant"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/failure"
	"seatsafe/shared/fee"
	"seatsafe/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, actor gDto.Actor, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, actor gDto.Actor, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, actor gDto.Actor, req dto.UpdateBookingRequest, id string) error
	ChangeStatus(ctx context.Context, actor gDto.Actor, id, target string) error
	Availability(ctx context.Context, organizationID, date string) (dto.AvailabilityResponse, error)
	FeeQuote(ctx context.Context, serviceID string) (dto.FeeQuoteResponse, error)
	AuditTrail(ctx context.Context, actor gDto.Actor, id string) (auditDto.GetEntriesResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	catalogRepo catalogRepo.Catalog
	orgRepo     orgRepo.Organization
	audit       auditService.AuditLog
	sink        notification.Sink
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	catalogRepo catalogRepo.Catalog,
	orgRepo orgRepo.Organization,
	audit auditService.AuditLog,
	sink notification.Sink,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		catalogRepo: catalogRepo,
		orgRepo:     orgRepo,
		audit:       audit,
		sink:        sink,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Create books a slot for a parent. The availability pre-check gives a fast
// rejection, but the real guard against double-booking is the partial unique
// index on (organization_id, scheduled_at) for non-cancelled rows: a
// concurrent insert loses there and is reported as a slot conflict.
func (s *serviceImpl) Create(ctx context.Context, actor gDto.Actor, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !actor.IsParent() {
		return res, failure.AuthorizationDenied // nolint:wrapcheck
	}

	scheduledAt, err := req.ScheduledAt()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking date/slot")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/slot format: %v", err)) // nolint:wrapcheck
	}

	if !model.OnSlotGrid(scheduledAt) {
		return res, failure.BadRequestFromString("slot must be one of the hourly start times between 09:00 and 17:00") // nolint:wrapcheck
	}

	svc, err := s.catalogRepo.Get(ctx, shared.FilterByID(req.ServiceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up service")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	if svc.ID == constant.Empty || !svc.IsActive {
		return res, failure.BadRequestFromString("service does not exist or is not active") // nolint:wrapcheck
	}

	if svc.OrganizationID != req.OrganizationID {
		return res, failure.BadRequestFromString("service does not belong to the given organization") // nolint:wrapcheck
	}

	taken, err := s.takenSlotSet(ctx, req.OrganizationID, scheduledAt)
	if err != nil {
		return res, err
	}

	if taken[scheduledAt.Format(constant.SlotTimeFormat)] {
		return res, failure.SlotConflict // nolint:wrapcheck
	}

	booking, err := req.ToModel(actor, svc.Price)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid booking request: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("organizationID", req.OrganizationID).
				Time("scheduledAt", scheduledAt).
				Msg("slot taken by concurrent booking")

			return res, failure.SlotConflict // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	s.appendAudit(ctx, booking.ID, auditModel.ActionCreate, nil, strPtr(model.StatusPending), actor)

	go func() {
		c := context.WithoutCancel(ctx)

		s.notifyOrganization(c, booking,
			"New booking request",
			fmt.Sprintf("A booking for %s on %s at %s is waiting for confirmation.", svc.Name, booking.Date(), booking.Slot()),
			notification.TypeBookingCreated,
		)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, actor gDto.Actor, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		if err = authorizeOnResponse(actor, res); err != nil {
			return dto.BookingResponse{}, err
		}

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	if err = authorizeOnBooking(actor, booking); err != nil {
		return dto.BookingResponse{}, err
	}

	return res, nil
}

// Update applies a parent's detail edit while the booking is still pending.
// An edit that moves the booking to another date or slot re-runs the
// availability check against the new slot.
func (s *serviceImpl) Update(ctx context.Context, actor gDto.Actor, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if err = authorizeOnBooking(actor, booking); err != nil {
		return err
	}

	if actor.IsParent() && booking.Status != model.StatusPending {
		return failure.Conflict("only pending bookings can be edited") // nolint:wrapcheck
	}

	if model.IsTerminal(booking.Status) {
		return failure.Conflict("booking can no longer be edited") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, actor.ID)

	if req.Reschedules() {
		scheduledAt, err := req.ScheduledAt(booking.ScheduledAt)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date/slot format: %v", err)) // nolint:wrapcheck
		}

		if !model.OnSlotGrid(scheduledAt) {
			return failure.BadRequestFromString("slot must be one of the hourly start times between 09:00 and 17:00") // nolint:wrapcheck
		}

		if !scheduledAt.Equal(booking.ScheduledAt) {
			taken, err := s.takenSlotSet(ctx, booking.OrganizationID, scheduledAt)
			if err != nil {
				return err
			}

			if taken[scheduledAt.Format(constant.SlotTimeFormat)] {
				return failure.SlotConflict // nolint:wrapcheck
			}

			updatedFields[model.FieldScheduledAt] = scheduledAt
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		if isUniqueViolation(err) {
			return failure.SlotConflict // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update booking")

		return failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	s.appendAudit(ctx, id, auditModel.ActionUpdate, nil, nil, actor)

	go s.invalidateBookingCaches(context.WithoutCancel(ctx), id)

	return nil
}

// ChangeStatus moves a booking along the lifecycle. Only the edges
// pending→confirmed, pending→cancelled, confirmed→completed and
// confirmed→cancelled are legal; completed and cancelled are terminal.
func (s *serviceImpl) ChangeStatus(ctx context.Context, actor gDto.Actor, id, target string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !actor.IsOrganizationSide() {
		return failure.AuthorizationDenied // nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if booking.OrganizationID != actor.OrganizationID {
		return failure.AuthorizationDenied // nolint:wrapcheck
	}

	if !model.CanTransition(booking.Status, target) {
		return failure.InvalidTransition // nolint:wrapcheck
	}

	// The read above only validated the edge optimistically. The guarded
	// update keys on the status it read, so a transition that raced against
	// another writer updates nothing and is rejected like any illegal edge.
	updated, err := s.repo.UpdateStatus(ctx, id, booking.Status, target, actor.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to change booking status")

		return failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	if !updated {
		log.Warn().
			Str("bookingID", id).
			Str("from", booking.Status).
			Str("to", target).
			Msg("status moved underneath the transition request")

		return failure.InvalidTransition // nolint:wrapcheck
	}

	s.appendAudit(ctx, id, auditModel.ActionStatusUpdate, strPtr(booking.Status), strPtr(target), actor)

	go func() {
		c := context.WithoutCancel(ctx)

		s.sink.Notify(c, booking.ParentID,
			"Booking "+target,
			fmt.Sprintf("Your booking on %s at %s is now %s.", booking.Date(), booking.Slot(), target),
			notification.TypeBookingStatus,
		)

		s.invalidateBookingCaches(c, id)
	}()

	return nil
}

// Availability reports which grid slots are occupied for an organization on a
// calendar date. A storage failure is surfaced as such, never treated as an
// empty (all free) result.
func (s *serviceImpl) Availability(ctx context.Context, organizationID, date string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.CalendarDateFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	taken, err := s.takenSlotSet(ctx, organizationID, day)
	if err != nil {
		return res, err
	}

	res.FromTaken(organizationID, date, taken)

	return res, nil
}

// FeeQuote recomputes the tier-dependent display fee for a service. Note the
// rate here is intentionally not the payout rate; see config.Fees.
func (s *serviceImpl) FeeQuote(ctx context.Context, serviceID string) (res dto.FeeQuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.FeeQuote")
	defer scope.End()
	defer scope.TraceIfError(err)

	svc, err := s.catalogRepo.Get(ctx, shared.FilterByID(serviceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up service")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	if svc.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	org, err := s.orgRepo.Get(ctx, shared.FilterByID(svc.OrganizationID, orgModel.FieldID, orgModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up organization")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	rate := fee.DisplayRate(s.cfg, org.SubscriptionTier)
	breakdown := fee.Display(svc.Price, rate)

	return dto.FeeQuoteResponse{
		ServiceID: serviceID,
		Tier:      org.SubscriptionTier,
		Rate:      rate,
		Price:     breakdown.Gross,
		Fee:       breakdown.Fee,
		Net:       breakdown.Net,
	}, nil
}

func (s *serviceImpl) AuditTrail(ctx context.Context, actor gDto.Actor, id string) (res auditDto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AuditTrail")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	if err = authorizeOnBooking(actor, booking); err != nil {
		return res, err
	}

	return s.audit.ListForBooking(ctx, id)
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) takenSlotSet(ctx context.Context, organizationID string, day time.Time) (map[string]bool, error) {
	slots, err := s.repo.TakenSlots(ctx, organizationID, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot availability")

		return nil, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	taken := make(map[string]bool, len(slots))
	for _, slot := range slots {
		taken[timezone.ToAppTime(slot).Format(constant.SlotTimeFormat)] = true
	}

	return taken, nil
}

// appendAudit is best-effort by design: losing an audit row is logged loudly
// for operators but never rolls back or fails the booking mutation itself.
func (s *serviceImpl) appendAudit(ctx context.Context, bookingID, action string, oldStatus, newStatus *string, actor gDto.Actor) {
	if err := s.audit.Append(ctx, bookingID, action, oldStatus, newStatus, actor); err != nil {
		log.Error().Err(err).
			Str("bookingID", bookingID).
			Str("action", action).
			Msg("audit entry dropped; booking mutation was already committed")
	}
}

func (s *serviceImpl) notifyOrganization(ctx context.Context, booking model.Booking, title, body, typeTag string) {
	org, err := s.orgRepo.Get(ctx, shared.FilterByID(booking.OrganizationID, orgModel.FieldID, orgModel.TableName))
	if err != nil || org.OwnerID == constant.Empty {
		log.Error().Err(err).Str("organizationID", booking.OrganizationID).Msg("failed to resolve notification recipient")

		return
	}

	s.sink.Notify(ctx, org.OwnerID, title, body, typeTag)
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
}

func authorizeOnResponse(actor gDto.Actor, res dto.BookingResponse) error {
	if actor.IsParent() && res.ParentID == actor.ID {
		return nil
	}

	if actor.IsOrganizationSide() && res.OrganizationID == actor.OrganizationID {
		return nil
	}

	return failure.AuthorizationDenied // nolint:wrapcheck
}

func authorizeOnBooking(actor gDto.Actor, booking model.Booking) error {
	if actor.IsParent() && booking.ParentID == actor.ID {
		return nil
	}

	if actor.IsOrganizationSide() && booking.OrganizationID == actor.OrganizationID {
		return nil
	}

	return failure.AuthorizationDenied // nolint:wrapcheck
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

func strPtr(s string) *string {
	return &s
}
