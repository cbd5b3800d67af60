package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"seatsafe/config"
	"seatsafe/infras/otel"
	"seatsafe/internal/domains/notification"
	orgModel "seatsafe/internal/domains/organization/model"
	orgRepo "seatsafe/internal/domains/organization/repository"
	"seatsafe/internal/domains/payout/model"
	"seatsafe/internal/domains/payout/model/dto"
	"seatsafe/internal/domains/payout/repository"
	"seatsafe/shared"
	"seatsafe/shared/cache"
	"seatsafe/shared/constant"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/failure"
	"seatsafe/shared/fee"
)

const (
	cacheGetAllPayout = "payout:gets"
	cacheCountPayout  = "payout:count"
)

type Payout interface {
	Create(ctx context.Context, actor gDto.Actor, req dto.CreatePayoutRequest) (dto.PayoutResponse, error)
	GetAll(ctx context.Context, actor gDto.Actor, params gDto.QueryParams) (dto.GetPayoutsResponse, error)
}

type serviceImpl struct {
	repo    repository.Payout
	orgRepo orgRepo.Organization
	sink    notification.Sink
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(
	repo repository.Payout,
	orgRepo orgRepo.Organization,
	sink notification.Sink,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Payout {
	return &serviceImpl{
		repo:    repo,
		orgRepo: orgRepo,
		sink:    sink,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// Create opens a pending payout request against the organization's available
// balance. Only the organization owner may move money out; team members can
// view payouts but not request them. The flat payout rate applies here
// regardless of subscription tier; tier rates only affect the displayed fee
// quote on the storefront.
func (s *serviceImpl) Create(ctx context.Context, actor gDto.Actor, req dto.CreatePayoutRequest) (res dto.PayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payout.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !actor.IsOrganization() {
		return res, failure.AuthorizationDenied // nolint:wrapcheck
	}

	org, err := s.orgRepo.Get(ctx, shared.FilterByID(actor.OrganizationID, orgModel.FieldID, orgModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up organization")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	if org.ID == constant.Empty {
		return res, failure.NotFound("organization not found") // nolint:wrapcheck
	}

	if req.Amount > org.AvailableBalance {
		return res, failure.BadRequestFromString(
			fmt.Sprintf("requested amount %.2f exceeds available balance %.2f", req.Amount, org.AvailableBalance)) // nolint:wrapcheck
	}

	breakdown := fee.Payout(req.Amount, s.cfg.Fees.PayoutRate)
	payout := req.ToModel(actor, breakdown)

	if err = s.repo.Insert(ctx, payout); err != nil {
		log.Error().Err(err).Msg("failed to create payout request")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.sink.Notify(c, org.OwnerID,
			"Payout request received",
			fmt.Sprintf("Your payout request of %.2f (net %.2f after fees) is pending review.", payout.GrossAmount, payout.NetAmount),
			notification.TypePayoutRequest,
		)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayout)
		shared.InvalidateCaches(c, s.cache, cacheCountPayout)
	}()

	res.FromModel(payout)

	return res, nil
}

// GetAll lists the actor's own organization's payout requests, newest first.
func (s *serviceImpl) GetAll(ctx context.Context, actor gDto.Actor, params gDto.QueryParams) (res dto.GetPayoutsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payout.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !actor.IsOrganizationSide() {
		return res, failure.AuthorizationDenied // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOrganizationID,
				Operator: gDto.FilterOperatorEq,
				Value:    actor.OrganizationID,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayout, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payouts")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payout requests")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payout requests")

		return res, failure.StorageUnavailable(err) // nolint:wrapcheck
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payouts to cache")
		}
	}()

	return res, nil
}
