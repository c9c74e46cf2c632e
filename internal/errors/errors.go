package errors

import (
	"errors"
	"fmt"
)

// Common error types for the wellbe client
var (
	// Transport errors
	ErrNoConnection   = errors.New("No internet connection")
	ErrUnauthorized   = errors.New("Authentication required. Please log in.")
	ErrNoRefreshToken = errors.New("No refresh token available")
	ErrRefreshFailed  = errors.New("token refresh failed")

	// Authentication errors
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrDuplicateEmail     = errors.New("User with this email already exists")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrResetRequest       = errors.New("Unable to send password reset email")
	ErrInvalidResetToken  = errors.New("Invalid or expired reset token")
	ErrMockOnly           = errors.New("Default user login only available in mock mode")

	// Token errors
	ErrInvalidToken        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// Domain errors
	ErrFoodNotFound     = errors.New("Food item not found")
	ErrExerciseNotFound = errors.New("Exercise not found")
	ErrWorkoutNotFound  = errors.New("Workout not found")

	// Storage errors
	ErrKeyNotFound = errors.New("key not found")

	// General errors
	ErrNotFound       = errors.New("not found")
	ErrInvalidRequest = errors.New("invalid request")
	ErrInternal       = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
