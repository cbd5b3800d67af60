package dto

import (
	"time"

	"github.com/google/uuid"

	"seatsafe/internal/domains/booking/model"
	"seatsafe/shared"
	"seatsafe/shared/constant"
	gDto "seatsafe/shared/dto"
	gModel "seatsafe/shared/model"
	"seatsafe/shared/timezone"
)

type CreateBookingRequest struct {
	OrganizationID  string `json:"organization_id"   validate:"required"`
	ServiceID       string `json:"service_id"        validate:"required"`
	Date            string `json:"date"              validate:"required"`
	Slot            string `json:"slot"              validate:"required"`
	VehicleInfo     string `json:"vehicle_info"      validate:"omitempty,max=200"`
	ServiceAddress  string `json:"service_address"   validate:"required,max=300"`
	ContactPhone    string `json:"contact_phone"     validate:"required,max=20"`
	Notes           string `json:"notes"             validate:"omitempty"`
	ParentFirstName string `json:"parent_first_name" validate:"required,max=100"`
	ParentLastName  string `json:"parent_last_name"  validate:"required,max=100"`
}

// ScheduledAt combines the request's date and slot into a single timestamp in
// the application timezone.
func (c *CreateBookingRequest) ScheduledAt() (time.Time, error) {
	return combineDateSlot(c.Date, c.Slot)
}

// ToModel builds the booking to insert. The price is the caller-supplied
// snapshot of the service's current price; later catalog changes never touch
// this booking.
func (c *CreateBookingRequest) ToModel(actor gDto.Actor, price float64) (model.Booking, error) {
	scheduledAt, err := c.ScheduledAt()
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:              uuid.NewString(),
		OrganizationID:  c.OrganizationID,
		ServiceID:       c.ServiceID,
		ParentID:        actor.ID,
		ScheduledAt:     scheduledAt,
		VehicleInfo:     c.VehicleInfo,
		ServiceAddress:  c.ServiceAddress,
		ContactPhone:    c.ContactPhone,
		Notes:           c.Notes,
		ParentFirstName: c.ParentFirstName,
		ParentLastName:  c.ParentLastName,
		TotalPrice:      price,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentStatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor.ID,
			ModifiedBy: actor.ID,
		},
	}, nil
}

type UpdateBookingRequest struct {
	Date            string `json:"date"              validate:"omitempty"`
	Slot            string `json:"slot"              validate:"omitempty"`
	VehicleInfo     string `db:"vehicle_info"        json:"vehicle_info"      validate:"omitempty,max=200"`
	ServiceAddress  string `db:"service_address"     json:"service_address"   validate:"omitempty,max=300"`
	ContactPhone    string `db:"contact_phone"       json:"contact_phone"     validate:"omitempty,max=20"`
	Notes           string `db:"notes"               json:"notes"             validate:"omitempty"`
	ParentFirstName string `db:"parent_first_name"   json:"parent_first_name" validate:"omitempty,max=100"`
	ParentLastName  string `db:"parent_last_name"    json:"parent_last_name"  validate:"omitempty,max=100"`
}

// Reschedules reports whether the edit moves the booking to another date or slot.
func (u *UpdateBookingRequest) Reschedules() bool {
	return u.Date != "" || u.Slot != ""
}

// ScheduledAt resolves the edit's new timestamp, falling back to the current
// booking's date or slot for whichever half was omitted.
func (u *UpdateBookingRequest) ScheduledAt(current time.Time) (time.Time, error) {
	date := u.Date
	if date == "" {
		date = current.Format(constant.CalendarDateFormat)
	}

	slot := u.Slot
	if slot == "" {
		slot = current.Format(constant.SlotTimeFormat)
	}

	return combineDateSlot(date, slot)
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	OrganizationID  string  `json:"organization_id"`
	ServiceID       string  `json:"service_id"`
	ParentID        string  `json:"parent_id"`
	Date            string  `json:"date"`
	Slot            string  `json:"slot"`
	VehicleInfo     string  `json:"vehicle_info"`
	ServiceAddress  string  `json:"service_address"`
	ContactPhone    string  `json:"contact_phone"`
	Notes           string  `json:"notes"`
	ParentFirstName string  `json:"parent_first_name"`
	ParentLastName  string  `json:"parent_last_name"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	PaymentStatus   string  `json:"payment_status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.OrganizationID = model.OrganizationID
	r.ServiceID = model.ServiceID
	r.ParentID = model.ParentID
	r.Date = model.Date()
	r.Slot = model.Slot()
	r.VehicleInfo = model.VehicleInfo
	r.ServiceAddress = model.ServiceAddress
	r.ContactPhone = model.ContactPhone
	r.Notes = model.Notes
	r.ParentFirstName = model.ParentFirstName
	r.ParentLastName = model.ParentLastName
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type AvailabilityResponse struct {
	OrganizationID string   `json:"organization_id"`
	Date           string   `json:"date"`
	TakenSlots     []string `json:"taken_slots"`
	FreeSlots      []string `json:"free_slots"`
}

// FromTaken splits the fixed grid into taken and free start times.
func (r *AvailabilityResponse) FromTaken(organizationID, date string, taken map[string]bool) {
	r.OrganizationID = organizationID
	r.Date = date
	r.TakenSlots = []string{}
	r.FreeSlots = []string{}

	for _, slot := range model.SlotGrid() {
		if taken[slot] {
			r.TakenSlots = append(r.TakenSlots, slot)
		} else {
			r.FreeSlots = append(r.FreeSlots, slot)
		}
	}
}

// FeeQuoteResponse is the tier-dependent platform fee shown to an organization
// for a service at booking time. It is always recomputed, never stored.
type FeeQuoteResponse struct {
	ServiceID string  `json:"service_id"`
	Tier      string  `json:"tier"`
	Rate      float64 `json:"rate"`
	Price     float64 `json:"price"`
	Fee       float64 `json:"fee"`
	Net       float64 `json:"net"`
}

func combineDateSlot(date, slot string) (time.Time, error) {
	return timezone.Parse(constant.CalendarDateFormat+" "+constant.SlotTimeFormat, date+" "+slot)
}
