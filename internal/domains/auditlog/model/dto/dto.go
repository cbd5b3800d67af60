package dto

import (
	"seatsafe/internal/domains/auditlog/model"
	"seatsafe/shared/constant"
	"seatsafe/shared/timezone"
)

type EntryResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Action    string  `json:"action"`
	OldStatus *string `json:"old_status"`
	NewStatus *string `json:"new_status"`
	ActorID   string  `json:"actor_id"`
	ActorRole string  `json:"actor_role"`
	CreatedAt string  `json:"created_at"`
}

func (r *EntryResponse) FromModel(model model.Entry) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Action = model.Action
	r.OldStatus = model.OldStatus
	r.NewStatus = model.NewStatus
	r.ActorID = model.ActorID
	r.ActorRole = model.ActorRole
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry) {
	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
