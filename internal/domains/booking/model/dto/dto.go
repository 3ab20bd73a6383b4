package dto

import (
	"time"

	"github.com/google/uuid"

	"apelcal/internal/domains/booking/model"
	"apelcal/shared"
	"apelcal/shared/constant"
	gDto "apelcal/shared/dto"
	gModel "apelcal/shared/model"
	"apelcal/shared/timezone"
)

type CreateBookingRequest struct {
	EventTypeID  string `json:"event_type_id" validate:"required,uuid4"`
	Date         string `json:"date" validate:"required,caldate"`
	StartTime    string `json:"start_time" validate:"required,clock"`
	InviteeName  string `json:"invitee_name" validate:"required,max=255"`
	InviteeEmail string `json:"invitee_email" validate:"required,contains=@,contains=."`
	InviteePhone string `json:"invitee_phone" validate:"omitempty,max=50"`
	Notes        string `json:"notes" validate:"omitempty,max=1000"`
}

// ToModel fills in the server-side fields: the end time from the event
// type duration, the status from its approval policy, and a fresh cancel
// token.
func (c *CreateBookingRequest) ToModel(endTime string, requiresApproval bool) model.Booking {
	status := model.StatusConfirmed
	if requiresApproval {
		status = model.StatusPending
	}

	return model.Booking{
		ID:           uuid.NewString(),
		EventTypeID:  c.EventTypeID,
		Date:         c.Date,
		StartTime:    c.StartTime,
		EndTime:      endTime,
		InviteeName:  c.InviteeName,
		InviteeEmail: c.InviteeEmail,
		InviteePhone: c.InviteePhone,
		Notes:        c.Notes,
		Status:       status,
		CancelToken:  uuid.NewString(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  c.InviteeEmail,
			ModifiedBy: c.InviteeEmail,
		},
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID                string     `json:"id"`
	EventTypeID       string     `json:"event_type_id"`
	EventTypeName     string     `json:"event_type_name"`
	EventTypeColor    string     `json:"event_type_color"`
	EventTypeDuration int        `json:"event_type_duration"`
	Date              string     `json:"date"`
	StartTime         string     `json:"start_time"`
	EndTime           string     `json:"end_time"`
	InviteeName       string     `json:"invitee_name"`
	InviteeEmail      string     `json:"invitee_email"`
	InviteePhone      string     `json:"invitee_phone"`
	Notes             string     `json:"notes"`
	Status            string     `json:"status"`
	CancelToken       string     `json:"cancel_token,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CancelReason      string     `json:"cancel_reason,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.EventTypeID = model.EventTypeID
	r.EventTypeName = model.EventTypeName
	r.EventTypeColor = model.EventTypeColor
	r.EventTypeDuration = model.EventTypeDuration
	r.Date = model.Date
	r.StartTime = shared.TrimClock(model.StartTime)
	r.EndTime = shared.TrimClock(model.EndTime)
	r.InviteeName = model.InviteeName
	r.InviteeEmail = model.InviteeEmail
	r.InviteePhone = model.InviteePhone
	r.Notes = model.Notes
	r.Status = model.Status
	r.CancelToken = model.CancelToken
	r.CancelledAt = model.CancelledAt
	r.CancelReason = model.CancelReason
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

type BookingStatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	// EventTypes counts the active event types, shown next to the
	// booking totals on the dashboard.
	EventTypes int `json:"event_types"`
}

// BookingEvent is the payload published to the lifecycle topic.
type BookingEvent struct {
	Event       string `json:"event"`
	BookingID   string `json:"booking_id"`
	EventTypeID string `json:"event_type_id"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurred_at"`
}

func NewBookingEvent(event string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Event:       event,
		BookingID:   booking.ID,
		EventTypeID: booking.EventTypeID,
		Date:        booking.Date,
		StartTime:   shared.TrimClock(booking.StartTime),
		Status:      booking.Status,
		OccurredAt:  timezone.Now().Format(constant.DateFormat),
	}
}
