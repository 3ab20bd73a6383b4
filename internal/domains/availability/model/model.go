package model

import "apelcal/shared/model"

const (
	WeeklyTableName  = "availability"
	WeeklyEntityName = "availability_rule"

	WeeklyFieldID        = "id"
	WeeklyFieldDayOfWeek = "day_of_week"
	WeeklyFieldStartTime = "start_time"
	WeeklyFieldEndTime   = "end_time"
	WeeklyFieldIsActive  = "is_active"

	OverrideTableName  = "date_overrides"
	OverrideEntityName = "date_override"

	OverrideFieldID          = "id"
	OverrideFieldDate        = "date"
	OverrideFieldIsAvailable = "is_available"
	OverrideFieldStartTime   = "start_time"
	OverrideFieldEndTime     = "end_time"
	OverrideFieldReason      = "reason"
)

// WeeklyRule is a recurring availability window. DayOfWeek runs Monday=0
// through Sunday=6.
type WeeklyRule struct {
	ID        string `db:"id"`
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	IsActive  bool   `db:"is_active"`
	model.Metadata
}

// DateOverride replaces the weekly rules for a single calendar date. A
// closed override has IsAvailable false; an open one carries either a
// custom window or, with both times empty, the regular weekly windows.
type DateOverride struct {
	ID          string  `db:"id"`
	Date        string  `db:"date"`
	IsAvailable bool    `db:"is_available"`
	StartTime   *string `db:"start_time"`
	EndTime     *string `db:"end_time"`
	Reason      string  `db:"reason"`
	model.Metadata
}
