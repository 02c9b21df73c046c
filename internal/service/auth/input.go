package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

const (
	maxEmailLength = 320
	maxNameLength  = 255
	maxImageLength = 2048
)

// SignInInput is the identity handed over by the trusted session provider.
type SignInInput struct {
	Email string
	Name  *string
	Image *string
}

// Validate validates the sign-in input.
func (i SignInInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	case len(email) > maxEmailLength:
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is too long"})
	default:
		if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
			errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email"})
		}
	}

	if i.Name != nil && len(*i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is too long"})
	}
	if i.Image != nil && len(*i.Image) > maxImageLength {
		errs = append(errs, domain.FieldError{Field: "image", Message: "Image URL is too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizedEmail is the lower-cased, trimmed email used as the identity key.
func (i SignInInput) normalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(i.Email))
}
