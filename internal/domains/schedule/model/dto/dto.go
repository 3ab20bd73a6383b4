package dto

import (
	"apelcal/internal/domains/schedule/slot"
)

type GetSlotsRequest struct {
	EventTypeID string `json:"event_type_id" validate:"required,uuid4"`
	Date        string `json:"date" validate:"required,caldate"`
}

type AvailableSlotsResponse struct {
	EventTypeID string      `json:"event_type_id"`
	Date        string      `json:"date"`
	Available   bool        `json:"available"`
	Slots       []slot.Slot `json:"slots"`
}

type DateAvailabilityResponse struct {
	EventTypeID string `json:"event_type_id"`
	Date        string `json:"date"`
	Available   bool   `json:"available"`
}

type BookableDatesResponse struct {
	EventTypeID string   `json:"event_type_id"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	Dates       []string `json:"dates"`
}
