package model

import "apelcal/shared/model"

const (
	TableName  = "settings"
	EntityName = "settings"

	FieldID             = "id"
	FieldBusinessName   = "business_name"
	FieldWelcomeMessage = "welcome_message"
	FieldBusinessEmail  = "business_email"
	FieldBusinessPhone  = "business_phone"
	FieldTimezone       = "timezone"
	FieldLogoURL        = "logo_url"
	FieldAdminPassword  = "admin_password"

	// The settings table is a singleton row.
	SingletonID = "00000000-0000-0000-0000-000000000001"
)

type Settings struct {
	ID             string `db:"id"`
	BusinessName   string `db:"business_name"`
	WelcomeMessage string `db:"welcome_message"`
	BusinessEmail  string `db:"business_email"`
	BusinessPhone  string `db:"business_phone"`
	Timezone       string `db:"timezone"`
	LogoURL        string `db:"logo_url"`
	// AdminPassword holds the bcrypt hash, never the clear text.
	AdminPassword string `db:"admin_password"`
	model.Metadata
}
