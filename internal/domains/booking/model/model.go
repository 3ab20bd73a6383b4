package model

import (
	"time"

	"apelcal/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldEventTypeID  = "event_type_id"
	FieldDate         = "date"
	FieldStartTime    = "start_time"
	FieldEndTime      = "end_time"
	FieldInviteeName  = "invitee_name"
	FieldInviteeEmail = "invitee_email"
	FieldInviteePhone = "invitee_phone"
	FieldNotes        = "notes"
	FieldStatus       = "status"
	FieldCancelToken  = "cancel_token"
	FieldCancelledAt  = "cancelled_at"
	FieldCancelReason = "cancel_reason"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Booking struct {
	ID           string     `db:"id"`
	EventTypeID  string     `db:"event_type_id"`
	Date         string     `db:"date"`
	StartTime    string     `db:"start_time"`
	EndTime      string     `db:"end_time"`
	InviteeName  string     `db:"invitee_name"`
	InviteeEmail string     `db:"invitee_email"`
	InviteePhone string     `db:"invitee_phone"`
	Notes        string     `db:"notes"`
	Status       string     `db:"status"`
	CancelToken  string     `db:"cancel_token"`
	CancelledAt  *time.Time `db:"cancelled_at"`
	CancelReason string     `db:"cancel_reason"`
	model.Metadata

	EventTypeName     string `db:"event_type_name" column:"name" table:"event_types"`
	EventTypeColor    string `db:"event_type_color" column:"color" table:"event_types"`
	EventTypeDuration int    `db:"event_type_duration" column:"duration_minutes" table:"event_types"`
}

func (Booking) GetJoinQuery() string {
	return "JOIN event_types ON event_types.id = bookings.event_type_id"
}
