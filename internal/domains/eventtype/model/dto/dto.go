package dto

import (
	"strings"

	"github.com/google/uuid"

	"apelcal/internal/domains/eventtype/model"
	"apelcal/shared"
	gDto "apelcal/shared/dto"
	gModel "apelcal/shared/model"
	"apelcal/shared/timezone"
)

type CreateEventTypeRequest struct {
	Name             string `json:"name" validate:"required,max=255"`
	Slug             string `json:"slug" validate:"omitempty,max=255"`
	Description      string `json:"description" validate:"omitempty,max=1000"`
	DurationMinutes  int    `json:"duration_minutes" validate:"required,gt=0"`
	Color            string `json:"color" validate:"omitempty,hexcolor"`
	LocationType     string `json:"location_type" validate:"omitempty,oneof=in_person phone video custom"`
	LocationDetails  string `json:"location_details" validate:"omitempty,max=500"`
	RequiresApproval bool   `json:"requires_approval"`
	BufferBefore     int    `json:"buffer_before_minutes" validate:"omitempty,gte=0"`
	BufferAfter      int    `json:"buffer_after_minutes" validate:"omitempty,gte=0"`
	MinNoticeHours   int    `json:"min_notice_hours" validate:"omitempty,gte=0"`
	MaxDaysAhead     int    `json:"max_days_ahead" validate:"omitempty,gt=0"`
	UseSpecificDates bool   `json:"use_specific_dates"`
}

func (c *CreateEventTypeRequest) ToModel(user string) model.EventType {
	slug := c.Slug
	if slug == "" {
		slug = Slugify(c.Name)
	}

	color := c.Color
	if color == "" {
		color = "#3788d8"
	}

	locationType := c.LocationType
	if locationType == "" {
		locationType = model.LocationTypeInPerson
	}

	maxDaysAhead := c.MaxDaysAhead
	if maxDaysAhead == 0 {
		maxDaysAhead = 60
	}

	return model.EventType{
		ID:               uuid.NewString(),
		Name:             c.Name,
		Slug:             slug,
		Description:      c.Description,
		DurationMinutes:  c.DurationMinutes,
		Color:            color,
		LocationType:     locationType,
		LocationDetails:  c.LocationDetails,
		RequiresApproval: c.RequiresApproval,
		BufferBefore:     c.BufferBefore,
		BufferAfter:      c.BufferAfter,
		MinNoticeHours:   c.MinNoticeHours,
		MaxDaysAhead:     maxDaysAhead,
		UseSpecificDates: c.UseSpecificDates,
		IsActive:         true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEventTypeRequest struct {
	Name             string `db:"name" json:"name" validate:"omitempty,max=255"`
	Slug             string `db:"slug" json:"slug" validate:"omitempty,max=255"`
	Description      string `db:"description" json:"description" validate:"omitempty,max=1000"`
	DurationMinutes  int    `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gt=0"`
	Color            string `db:"color" json:"color" validate:"omitempty,hexcolor"`
	LocationType     string `db:"location_type" json:"location_type" validate:"omitempty,oneof=in_person phone video custom"`
	LocationDetails  string `db:"location_details" json:"location_details" validate:"omitempty,max=500"`
	RequiresApproval *bool  `db:"requires_approval" json:"requires_approval" validate:"omitempty"`
	BufferBefore     *int   `db:"buffer_before_minutes" json:"buffer_before_minutes" validate:"omitempty,gte=0"`
	BufferAfter      *int   `db:"buffer_after_minutes" json:"buffer_after_minutes" validate:"omitempty,gte=0"`
	MinNoticeHours   *int   `db:"min_notice_hours" json:"min_notice_hours" validate:"omitempty,gte=0"`
	MaxDaysAhead     *int   `db:"max_days_ahead" json:"max_days_ahead" validate:"omitempty,gt=0"`
	UseSpecificDates *bool  `db:"use_specific_dates" json:"use_specific_dates" validate:"omitempty"`
	IsActive         *bool  `db:"is_active" json:"is_active" validate:"omitempty"`
}

type EventTypeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Description      string `json:"description"`
	DurationMinutes  int    `json:"duration_minutes"`
	Color            string `json:"color"`
	LocationType     string `json:"location_type"`
	LocationDetails  string `json:"location_details"`
	RequiresApproval bool   `json:"requires_approval"`
	BufferBefore     int    `json:"buffer_before_minutes"`
	BufferAfter      int    `json:"buffer_after_minutes"`
	MinNoticeHours   int    `json:"min_notice_hours"`
	MaxDaysAhead     int    `json:"max_days_ahead"`
	UseSpecificDates bool   `json:"use_specific_dates"`
	IsActive         bool   `json:"is_active"`
	gDto.Metadata
}

func (r *EventTypeResponse) FromModel(model model.EventType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.DurationMinutes = model.DurationMinutes
	r.Color = model.Color
	r.LocationType = model.LocationType
	r.LocationDetails = model.LocationDetails
	r.RequiresApproval = model.RequiresApproval
	r.BufferBefore = model.BufferBefore
	r.BufferAfter = model.BufferAfter
	r.MinNoticeHours = model.MinNoticeHours
	r.MaxDaysAhead = model.MaxDaysAhead
	r.UseSpecificDates = model.UseSpecificDates
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetEventTypesResponse struct {
	EventTypes []EventTypeResponse `json:"event_types"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetEventTypesResponse) FromModels(models []model.EventType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.EventTypes = make([]EventTypeResponse, len(models))
	for i, mod := range models {
		r.EventTypes[i].FromModel(mod)
	}
}

type SetEventTypeDatesRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,caldate"`
}

func (c *SetEventTypeDatesRequest) ToModels(eventTypeID, user string) []model.EventTypeDate {
	models := make([]model.EventTypeDate, len(c.Dates))
	for i, date := range c.Dates {
		models[i] = model.EventTypeDate{
			ID:          uuid.NewString(),
			EventTypeID: eventTypeID,
			Date:        date,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return models
}

type EventTypeDatesResponse struct {
	EventTypeID string   `json:"event_type_id"`
	Dates       []string `json:"dates"`
}

// Slugify lowercases the name and collapses non-alphanumeric runs into
// single hyphens.
func Slugify(name string) string {
	var b strings.Builder

	lastHyphen := true

	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)

			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')

				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
