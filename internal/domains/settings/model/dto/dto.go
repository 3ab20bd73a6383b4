package dto

import (
	"mime/multipart"

	"apelcal/internal/domains/settings/model"
	gDto "apelcal/shared/dto"
)

type UpdateSettingsRequest struct {
	BusinessName   string `db:"business_name" json:"business_name" validate:"omitempty,max=255"`
	WelcomeMessage string `db:"welcome_message" json:"welcome_message" validate:"omitempty,max=1000"`
	BusinessEmail  string `db:"business_email" json:"business_email" validate:"omitempty,email"`
	BusinessPhone  string `db:"business_phone" json:"business_phone" validate:"omitempty,max=50"`
	Timezone       string `db:"timezone" json:"timezone" validate:"omitempty,max=64"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type UploadLogoRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
}

type UploadLogoResponse struct {
	LogoURL string `json:"logo_url"`
}

type SettingsResponse struct {
	BusinessName   string `json:"business_name"`
	WelcomeMessage string `json:"welcome_message"`
	BusinessEmail  string `json:"business_email"`
	BusinessPhone  string `json:"business_phone"`
	Timezone       string `json:"timezone"`
	LogoURL        string `json:"logo_url"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(model model.Settings) {
	r.BusinessName = model.BusinessName
	r.WelcomeMessage = model.WelcomeMessage
	r.BusinessEmail = model.BusinessEmail
	r.BusinessPhone = model.BusinessPhone
	r.Timezone = model.Timezone
	r.LogoURL = model.LogoURL
	r.Metadata.FromModel(model.Metadata)
}
