package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"seatsafe/config"
	"seatsafe/infras/otel/mocks"
	notificationMocks "seatsafe/internal/domains/notification/mocks"
	orgMocks "seatsafe/internal/domains/organization/mocks"
	orgModel "seatsafe/internal/domains/organization/model"
	payoutMocks "seatsafe/internal/domains/payout/mocks"
	"seatsafe/internal/domains/payout/model"
	"seatsafe/internal/domains/payout/model/dto"
	"seatsafe/internal/domains/payout/service"
	cacheMocks "seatsafe/shared/cache/mocks"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/failure"
)

type payoutMockSet struct {
	repo  *payoutMocks.MockPayout
	org   *orgMocks.MockOrganization
	sink  *notificationMocks.MockSink
	cache *cacheMocks.MockRedisCache
}

func newPayoutService(ctrl *gomock.Controller) (service.Payout, payoutMockSet) {
	m := payoutMockSet{
		repo:  payoutMocks.NewMockPayout(ctrl),
		org:   orgMocks.NewMockOrganization(ctrl),
		sink:  notificationMocks.NewMockSink(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Fees.PayoutRate = 0.03

	svc := service.New(m.repo, m.org, m.sink, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func TestPayoutService_Create(t *testing.T) {
	orgActor := gDto.Actor{ID: "owner-1", Role: "organization", OrganizationID: "org-1"}

	org := orgModel.Organization{
		ID:               "org-1",
		OwnerID:          "owner-1",
		AvailableBalance: 500,
	}

	validReq := dto.CreatePayoutRequest{
		Amount:  100,
		Method:  model.MethodBankTransfer,
		Details: "IBAN DE44 5001 0517 5407 3249 31",
	}

	tests := []struct {
		name      string
		actor     gDto.Actor
		req       dto.CreatePayoutRequest
		setupMock func(m payoutMockSet)
		wantErr   error
		check     func(t *testing.T, res dto.PayoutResponse)
	}{
		{
			name:  "successful request carries the flat-rate fee breakdown",
			actor: orgActor,
			req:   validReq,
			setupMock: func(m payoutMockSet) {
				m.org.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(org, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.sink.EXPECT().
					Notify(gomock.Any(), "owner-1", gomock.Any(), gomock.Any(), gomock.Any()).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, res dto.PayoutResponse) {
				assert.Equal(t, 100.0, res.GrossAmount)
				assert.Equal(t, 3.0, res.FeeAmount)
				assert.Equal(t, 97.0, res.NetAmount)
				assert.Equal(t, res.GrossAmount, res.FeeAmount+res.NetAmount)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.Equal(t, "org-1", res.OrganizationID)
			},
		},
		{
			name:      "parents cannot request payouts",
			actor:     gDto.Actor{ID: "parent-1", Role: "parent"},
			req:       validReq,
			setupMock: func(m payoutMockSet) {},
			wantErr:   failure.AuthorizationDenied,
		},
		{
			name:      "team members cannot request payouts, only the owner can",
			actor:     gDto.Actor{ID: "member-1", Role: "team_member", OrganizationID: "org-1"},
			req:       validReq,
			setupMock: func(m payoutMockSet) {},
			wantErr:   failure.AuthorizationDenied,
		},
		{
			name:  "amount above the available balance is rejected",
			actor: orgActor,
			req: dto.CreatePayoutRequest{
				Amount:  600,
				Method:  model.MethodBankTransfer,
				Details: "IBAN DE44 5001 0517 5407 3249 31",
			},
			setupMock: func(m payoutMockSet) {
				m.org.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(org, nil)
			},
			wantErr: &failure.Failure{},
		},
		{
			name:  "unknown organization yields not found",
			actor: orgActor,
			req:   validReq,
			setupMock: func(m payoutMockSet) {
				m.org.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(orgModel.Organization{}, nil)
			},
			wantErr: &failure.Failure{},
		},
		{
			name:  "storage failure on insert is surfaced",
			actor: orgActor,
			req:   validReq,
			setupMock: func(m payoutMockSet) {
				m.org.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(org, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: &failure.Failure{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newPayoutService(ctrl)
			tt.setupMock(m)

			res, err := svc.Create(context.Background(), tt.actor, tt.req)

			if tt.wantErr != nil {
				assert.Error(t, err)

				var sentinel *failure.Failure
				if errors.As(tt.wantErr, &sentinel) && sentinel.Message != "" {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				tt.check(t, res)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestPayoutService_GetAll(t *testing.T) {
	orgActor := gDto.Actor{ID: "owner-1", Role: "organization", OrganizationID: "org-1"}
	params := gDto.QueryParams{Page: 1, Limit: 10}

	tests := []struct {
		name      string
		actor     gDto.Actor
		setupMock func(m payoutMockSet)
		wantErr   error
		check     func(t *testing.T, res dto.GetPayoutsResponse)
	}{
		{
			name:  "lists the actor's own organization only",
			actor: orgActor,
			setupMock: func(m payoutMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					GetAll(gomock.Any(), params, gomock.Any()).
					Return([]model.PayoutRequest{
						{ID: "p-1", OrganizationID: "org-1", GrossAmount: 100, FeeAmount: 3, NetAmount: 97, Status: model.StatusPending},
					}, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, res dto.GetPayoutsResponse) {
				assert.Len(t, res.Payouts, 1)
				assert.Equal(t, 1, res.TotalData)
				assert.Equal(t, "p-1", res.Payouts[0].ID)
			},
		},
		{
			name:      "parents cannot list payouts",
			actor:     gDto.Actor{ID: "parent-1", Role: "parent"},
			setupMock: func(m payoutMockSet) {},
			wantErr:   failure.AuthorizationDenied,
		},
		{
			name:  "storage failure is surfaced",
			actor: orgActor,
			setupMock: func(m payoutMockSet) {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("connection refused"))
			},
			wantErr: &failure.Failure{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newPayoutService(ctrl)
			tt.setupMock(m)

			res, err := svc.GetAll(context.Background(), tt.actor, params)

			if tt.wantErr != nil {
				assert.Error(t, err)

				var sentinel *failure.Failure
				if errors.As(tt.wantErr, &sentinel) && sentinel.Message != "" {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				tt.check(t, res)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}
