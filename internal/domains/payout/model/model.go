package model

import (
	gModel "seatsafe/shared/model"
)

const (
	EntityName = "payout request"
	TableName  = "payout_requests"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldStatus         = "status"
	FieldCreatedAt      = "created_at"
)

// Payout request lifecycle. Transitions out of pending happen in a back
// office flow, not through this API.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusRejected = "rejected"
)

const (
	MethodBankTransfer = "bank_transfer"
	MethodPaypal       = "paypal"
)

type PayoutRequest struct {
	ID             string  `db:"id" json:"id"`
	OrganizationID string  `db:"organization_id" json:"organization_id"`
	GrossAmount    float64 `db:"gross_amount" json:"gross_amount"`
	FeeAmount      float64 `db:"fee_amount" json:"fee_amount"`
	NetAmount      float64 `db:"net_amount" json:"net_amount"`
	Method         string  `db:"method" json:"method"`
	Details        string  `db:"details" json:"details"`
	Status         string  `db:"status" json:"status"`
	gModel.Metadata
}
