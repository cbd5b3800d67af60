package dto

import (
	"github.com/google/uuid"

	"seatsafe/internal/domains/payout/model"
	"seatsafe/shared"
	gDto "seatsafe/shared/dto"
	"seatsafe/shared/fee"
	gModel "seatsafe/shared/model"
	"seatsafe/shared/timezone"
)

type CreatePayoutRequest struct {
	Amount  float64 `json:"amount"  validate:"required,gt=0"`
	Method  string  `json:"method"  validate:"required,oneof=bank_transfer paypal"`
	Details string  `json:"details" validate:"required,max=300"`
}

// ToModel builds a pending payout request with the fee breakdown already
// applied, so the stored amounts never drift from the rate in effect at
// request time.
func (c *CreatePayoutRequest) ToModel(actor gDto.Actor, breakdown fee.Breakdown) model.PayoutRequest {
	return model.PayoutRequest{
		ID:             uuid.NewString(),
		OrganizationID: actor.OrganizationID,
		GrossAmount:    breakdown.Gross,
		FeeAmount:      breakdown.Fee,
		NetAmount:      breakdown.Net,
		Method:         c.Method,
		Details:        c.Details,
		Status:         model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor.ID,
			ModifiedBy: actor.ID,
		},
	}
}

type PayoutResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	GrossAmount    float64 `json:"gross_amount"`
	FeeAmount      float64 `json:"fee_amount"`
	NetAmount      float64 `json:"net_amount"`
	Method         string  `json:"method"`
	Details        string  `json:"details"`
	Status         string  `json:"status"`
	gDto.Metadata
}

func (r *PayoutResponse) FromModel(model model.PayoutRequest) {
	r.ID = model.ID
	r.OrganizationID = model.OrganizationID
	r.GrossAmount = model.GrossAmount
	r.FeeAmount = model.FeeAmount
	r.NetAmount = model.NetAmount
	r.Method = model.Method
	r.Details = model.Details
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetPayoutsResponse struct {
	Payouts   []PayoutResponse `json:"payouts"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetPayoutsResponse) FromModels(models []model.PayoutRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payouts = make([]PayoutResponse, len(models))
	for i, mod := range models {
		r.Payouts[i].FromModel(mod)
	}
}
