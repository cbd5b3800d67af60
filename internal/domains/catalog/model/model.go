package model

import (
	"seatsafe/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID             = "id"
	FieldOrganizationID = "organization_id"
	FieldName           = "name"
	FieldPrice          = "price"
	FieldIsActive       = "is_active"
)

// Service is a catalog entry. Its price is copied into a booking at creation
// time; changing it afterwards never touches existing bookings.
type Service struct {
	ID             string  `db:"id"`
	OrganizationID string  `db:"organization_id"`
	Name           string  `db:"name"`
	Price          float64 `db:"price"`
	IsActive       bool    `db:"is_active"`
	model.Metadata
}
