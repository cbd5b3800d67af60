package model

import (
	"seatsafe/shared/model"
)

const (
	TableName  = "organizations"
	EntityName = "organization"

	FieldID               = "id"
	FieldOwnerID          = "owner_id"
	FieldName             = "name"
	FieldSubscriptionTier = "subscription_tier"
	FieldAvailableBalance = "available_balance"
)

// Organization is owned by the surrounding application; this core only reads
// the owner (notification recipient), subscription tier (fee display rate) and
// available balance (payout ceiling).
type Organization struct {
	ID               string  `db:"id"`
	OwnerID          string  `db:"owner_id"`
	Name             string  `db:"name"`
	SubscriptionTier string  `db:"subscription_tier"`
	AvailableBalance float64 `db:"available_balance"`
	model.Metadata
}
