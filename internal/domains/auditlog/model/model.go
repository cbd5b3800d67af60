package model

import (
	"time"
)

const (
	TableName  = "booking_audit_logs"
	EntityName = "audit log entry"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldAction    = "action"
	FieldOldStatus = "old_status"
	FieldNewStatus = "new_status"
	FieldActorID   = "actor_id"
	FieldActorRole = "actor_role"
	FieldCreatedAt = "created_at"
)

const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionStatusUpdate = "status_update"
)

// Entry is one immutable record of a booking mutation. Entries are only ever
// inserted, never updated or deleted.
type Entry struct {
	ID        string    `db:"id"`
	BookingID string    `db:"booking_id"`
	Action    string    `db:"action"`
	OldStatus *string   `db:"old_status"`
	NewStatus *string   `db:"new_status"`
	ActorID   string    `db:"actor_id"`
	ActorRole string    `db:"actor_role"`
	CreatedAt time.Time `db:"created_at"`
}
