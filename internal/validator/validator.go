// Package validator checks auth request payloads before they reach the
// service layer.
package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Credentials is a login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is a signup payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateCredentials validates a login payload.
func ValidateCredentials(c *Credentials) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&c.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// ValidateRegistration validates a signup payload. The minimum password
// length mirrors the login form's client-side rule.
func ValidateRegistration(r *Registration) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required.Error("name_required"),
			validation.Length(1, 120).Error("name_too_long"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password_required"),
			validation.Length(6, 0).Error("password_too_short"),
		),
	)
}
