package validator_test

import (
	"strings"
	"testing"

	"apelcal/shared/validator"
)

type bookingPayload struct {
	Name  string `validate:"required,max=255" json:"name"`
	Email string `validate:"required,contains=@,contains=." json:"email"`
	Date  string `validate:"required,caldate" json:"date"`
	Start string `validate:"required,clock" json:"start_time"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        bookingPayload
		expectError bool
	}{
		{
			name: "valid payload",
			data: bookingPayload{
				Name:  "Jamie Doe",
				Email: "jamie@example.com",
				Date:  "2030-01-07",
				Start: "09:00",
			},
			expectError: false,
		},
		{
			name: "missing name",
			data: bookingPayload{
				Email: "jamie@example.com",
				Date:  "2030-01-07",
				Start: "09:00",
			},
			expectError: true,
		},
		{
			name: "email without at sign",
			data: bookingPayload{
				Name:  "Jamie Doe",
				Email: "jamie.example.com",
				Date:  "2030-01-07",
				Start: "09:00",
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: bookingPayload{
				Name:  "Jamie Doe",
				Email: "jamie@example.com",
				Date:  "07/01/2030",
				Start: "09:00",
			},
			expectError: true,
		},
		{
			name: "malformed time",
			data: bookingPayload{
				Name:  "Jamie Doe",
				Email: "jamie@example.com",
				Date:  "2030-01-07",
				Start: "25:00",
			},
			expectError: true,
		},
		{
			name: "time with seconds is accepted",
			data: bookingPayload{
				Name:  "Jamie Doe",
				Email: "jamie@example.com",
				Date:  "2030-01-07",
				Start: "09:00:00",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"name":"Jamie Doe","email":"jamie@example.com","date":"2030-01-07","start_time":"09:00"}`)

	var payload bookingPayload
	if err := validator.Validate(body, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.Name != "Jamie Doe" {
		t.Errorf("expected decoded name, got %q", payload.Name)
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	body := strings.NewReader(`{not json`)

	var payload bookingPayload
	if err := validator.Validate(body, &payload); err == nil {
		t.Error("expected error for invalid json")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2030-01-07", "caldate"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("not-a-date", "caldate"); err == nil {
		t.Error("expected error for malformed date")
	}

	if err := validator.ValidateVar("09:30", "clock"); err != nil {
		t.Errorf("expected valid clock, got %v", err)
	}

	if err := validator.ValidateVar("9am", "clock"); err == nil {
		t.Error("expected error for malformed clock")
	}
}
