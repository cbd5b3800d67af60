package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"seatsafe/infras/otel/mocks"
	auditMocks "seatsafe/internal/domains/auditlog/mocks"
	"seatsafe/internal/domains/auditlog/model"
	"seatsafe/internal/domains/auditlog/service"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/failure"
	"seatsafe/shared/timezone"
)

func TestAuditLogService_Append(t *testing.T) {
	actor := gDto.Actor{ID: "owner-1", Role: "organization", OrganizationID: "org-1"}
	pending := "pending"
	confirmed := "confirmed"

	tests := []struct {
		name      string
		setupMock func(repo *auditMocks.MockAuditLog)
		wantErr   bool
	}{
		{
			name: "entry carries the actor and both statuses",
			setupMock: func(repo *auditMocks.MockAuditLog) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, entry model.Entry) error {
						assert.NotEmpty(t, entry.ID)
						assert.Equal(t, "b-1", entry.BookingID)
						assert.Equal(t, model.ActionStatusUpdate, entry.Action)
						assert.Equal(t, &pending, entry.OldStatus)
						assert.Equal(t, &confirmed, entry.NewStatus)
						assert.Equal(t, "owner-1", entry.ActorID)
						assert.Equal(t, "organization", entry.ActorRole)
						assert.False(t, entry.CreatedAt.IsZero())

						return nil
					})
			},
		},
		{
			name: "insert failure is surfaced as storage unavailability",
			setupMock: func(repo *auditMocks.MockAuditLog) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := auditMocks.NewMockAuditLog(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, mocks.NewOtel())

			err := svc.Append(context.Background(), "b-1", model.ActionStatusUpdate, &pending, &confirmed, actor)

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsStorageUnavailable(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuditLogService_ListForBooking(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *auditMocks.MockAuditLog)
		wantErr   bool
		check     func(t *testing.T, res []string)
	}{
		{
			name: "entries come back newest first for the booking only",
			setupMock: func(repo *auditMocks.MockAuditLog) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Entry, error) {
						assert.Equal(t, model.FieldCreatedAt, params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)
						assert.Len(t, filter.Filters, 1)

						return []model.Entry{
							{ID: "e-2", BookingID: "b-1", Action: model.ActionStatusUpdate, CreatedAt: timezone.Now()},
							{ID: "e-1", BookingID: "b-1", Action: model.ActionCreate, CreatedAt: timezone.Now()},
						}, nil
					})
			},
			check: func(t *testing.T, ids []string) {
				assert.Equal(t, []string{"e-2", "e-1"}, ids)
			},
		},
		{
			name: "storage failure is surfaced",
			setupMock: func(repo *auditMocks.MockAuditLog) {
				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := auditMocks.NewMockAuditLog(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, mocks.NewOtel())

			res, err := svc.ListForBooking(context.Background(), "b-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsStorageUnavailable(err))

				return
			}

			assert.NoError(t, err)

			ids := make([]string, len(res.Entries))
			for i, e := range res.Entries {
				ids[i] = e.ID
			}

			tt.check(t, ids)
		})
	}
}
