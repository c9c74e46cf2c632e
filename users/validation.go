package users

import (
	"errors"
	"strings"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

var ErrEmailRequired = errors.New("Email is required")

// ValidateEmail only requires an address to be present. Its format is the
// server's concern.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return wellbeerrors.ErrPasswordTooShort
	}
	return nil
}

// ValidateCredentials validates a new account's email and password, email first.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
