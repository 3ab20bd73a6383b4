package dto

import (
	"github.com/google/uuid"

	"apelcal/internal/domains/availability/model"
	"apelcal/shared"
	gDto "apelcal/shared/dto"
	gModel "apelcal/shared/model"
	"apelcal/shared/timezone"
)

type CreateWeeklyRuleRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
}

func (c *CreateWeeklyRuleRequest) ToModel(user string) model.WeeklyRule {
	return model.WeeklyRule{
		ID:        uuid.NewString(),
		DayOfWeek: *c.DayOfWeek,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		IsActive:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateWeeklyRuleRequest struct {
	DayOfWeek *int   `db:"day_of_week" json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime string `db:"start_time" json:"start_time" validate:"omitempty,clock"`
	EndTime   string `db:"end_time" json:"end_time" validate:"omitempty,clock"`
	IsActive  *bool  `db:"is_active" json:"is_active" validate:"omitempty"`
}

type WeeklyRuleResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	IsActive  bool   `json:"is_active"`
	gDto.Metadata
}

func (r *WeeklyRuleResponse) FromModel(model model.WeeklyRule) {
	r.ID = model.ID
	r.DayOfWeek = model.DayOfWeek
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetWeeklyRulesResponse struct {
	Rules     []WeeklyRuleResponse `json:"rules"`
	TotalData int                  `json:"total_data"`
}

func (r *GetWeeklyRulesResponse) FromModels(models []model.WeeklyRule) {
	r.TotalData = len(models)

	r.Rules = make([]WeeklyRuleResponse, len(models))
	for i, mod := range models {
		r.Rules[i].FromModel(mod)
	}
}

type CreateDateOverrideRequest struct {
	Date        string  `json:"date" validate:"required,caldate"`
	IsAvailable bool    `json:"is_available"`
	StartTime   *string `json:"start_time" validate:"omitempty,clock"`
	EndTime     *string `json:"end_time" validate:"omitempty,clock"`
	Reason      string  `json:"reason" validate:"omitempty,max=500"`
}

func (c *CreateDateOverrideRequest) ToModel(user string) model.DateOverride {
	return model.DateOverride{
		ID:          uuid.NewString(),
		Date:        c.Date,
		IsAvailable: c.IsAvailable,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Reason:      c.Reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type DateOverrideResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	IsAvailable bool    `json:"is_available"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Reason      string  `json:"reason"`
	gDto.Metadata
}

func (r *DateOverrideResponse) FromModel(model model.DateOverride) {
	r.ID = model.ID
	r.Date = model.Date
	r.IsAvailable = model.IsAvailable
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Reason = model.Reason
	r.Metadata.FromModel(model.Metadata)
}

type GetDateOverridesResponse struct {
	Overrides []DateOverrideResponse `json:"overrides"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetDateOverridesResponse) FromModels(models []model.DateOverride, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Overrides = make([]DateOverrideResponse, len(models))
	for i, mod := range models {
		r.Overrides[i].FromModel(mod)
	}
}
