package model

import "apelcal/shared/model"

const (
	TableName  = "event_types"
	EntityName = "event_type"

	FieldID               = "id"
	FieldName             = "name"
	FieldSlug             = "slug"
	FieldDescription      = "description"
	FieldDurationMinutes  = "duration_minutes"
	FieldColor            = "color"
	FieldLocationType     = "location_type"
	FieldLocationDetails  = "location_details"
	FieldRequiresApproval = "requires_approval"
	FieldBufferBefore     = "buffer_before_minutes"
	FieldBufferAfter      = "buffer_after_minutes"
	FieldMinNoticeHours   = "min_notice_hours"
	FieldMaxDaysAhead     = "max_days_ahead"
	FieldUseSpecificDates = "use_specific_dates"
	FieldIsActive         = "is_active"

	DateTableName  = "event_type_dates"
	DateEntityName = "event_type_date"

	DateFieldID          = "id"
	DateFieldEventTypeID = "event_type_id"
	DateFieldDate        = "date"
)

const (
	LocationTypeInPerson = "in_person"
	LocationTypePhone    = "phone"
	LocationTypeVideo    = "video"
	LocationTypeCustom   = "custom"
)

type EventType struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	Slug             string `db:"slug"`
	Description      string `db:"description"`
	DurationMinutes  int    `db:"duration_minutes"`
	Color            string `db:"color"`
	LocationType     string `db:"location_type"`
	LocationDetails  string `db:"location_details"`
	RequiresApproval bool   `db:"requires_approval"`
	BufferBefore     int    `db:"buffer_before_minutes"`
	BufferAfter      int    `db:"buffer_after_minutes"`
	MinNoticeHours   int    `db:"min_notice_hours"`
	MaxDaysAhead     int    `db:"max_days_ahead"`
	// UseSpecificDates restricts bookable days to the explicit date
	// allowlist instead of every day with weekly rules.
	UseSpecificDates bool `db:"use_specific_dates"`
	IsActive         bool `db:"is_active"`
	model.Metadata
}

type EventTypeDate struct {
	ID          string `db:"id"`
	EventTypeID string `db:"event_type_id"`
	Date        string `db:"date"`
	model.Metadata
}
