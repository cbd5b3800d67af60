package model

import (
	"time"

	"seatsafe/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldOrganizationID  = "organization_id"
	FieldServiceID       = "service_id"
	FieldParentID        = "parent_id"
	FieldScheduledAt     = "scheduled_at"
	FieldVehicleInfo     = "vehicle_info"
	FieldServiceAddress  = "service_address"
	FieldContactPhone    = "contact_phone"
	FieldNotes           = "notes"
	FieldParentFirstName = "parent_first_name"
	FieldParentLastName  = "parent_last_name"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// transitions holds the legal status edges. completed and cancelled are
// terminal and have no outgoing edges.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether moving a booking from one status to another is
// a legal edge of the lifecycle.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// IsTerminal reports whether a status has no outgoing transitions.
func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

const (
	slotFirstHour = 9
	slotLastHour  = 17
)

// SlotGrid returns the fixed daily grid of bookable start times, as HH:MM
// strings: nine one-hour slots from 09:00 through 17:00.
func SlotGrid() []string {
	slots := make([]string, 0, slotLastHour-slotFirstHour+1)
	for hour := slotFirstHour; hour <= slotLastHour; hour++ {
		slots = append(slots, time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04"))
	}

	return slots
}

// OnSlotGrid reports whether a scheduled time lands exactly on the grid.
func OnSlotGrid(t time.Time) bool {
	if t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}

	return t.Hour() >= slotFirstHour && t.Hour() <= slotLastHour
}

type Booking struct {
	ID              string    `db:"id"`
	OrganizationID  string    `db:"organization_id"`
	ServiceID       string    `db:"service_id"`
	ParentID        string    `db:"parent_id"`
	ScheduledAt     time.Time `db:"scheduled_at"`
	VehicleInfo     string    `db:"vehicle_info"`
	ServiceAddress  string    `db:"service_address"`
	ContactPhone    string    `db:"contact_phone"`
	Notes           string    `db:"notes"`
	ParentFirstName string    `db:"parent_first_name"`
	ParentLastName  string    `db:"parent_last_name"`
	TotalPrice      float64   `db:"total_price"`
	Status          string    `db:"status"`
	PaymentStatus   string    `db:"payment_status"`
	model.Metadata
}

// Slot returns the booking's start time on the daily grid as HH:MM.
func (b *Booking) Slot() string {
	return b.ScheduledAt.Format("15:04")
}

// Date returns the booking's calendar date as YYYY-MM-DD.
func (b *Booking) Date() string {
	return b.ScheduledAt.Format("2006-01-02")
}
