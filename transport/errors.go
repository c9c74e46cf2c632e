package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
)

// UnexpectedErrorMessage is used when nothing more specific is known.
const UnexpectedErrorMessage = "An unexpected error occurred."

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad request. Please check your input.",
	http.StatusUnauthorized:        wellbeerrors.ErrUnauthorized.Error(),
	http.StatusForbidden:           "Access denied. You don't have permission.",
	http.StatusNotFound:            "Resource not found.",
	http.StatusTooManyRequests:     "Too many requests. Please try again later.",
	http.StatusInternalServerError: "Server error. Please try again later.",
}

// StatusError is a completed exchange with a non-2xx status.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.Status)
}

func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return wellbeerrors.ErrUnauthorized
	}
	return nil
}

// serverMessage extracts the message or error field from a JSON error body.
func (e *StatusError) serverMessage() string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	if m := strings.TrimSpace(body.Message); m != "" {
		return m
	}
	return strings.TrimSpace(body.Error)
}

// ErrorMessage maps err to the message shown to users: the server's own message,
// then a fixed text for well-known statuses, then the error text itself.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		if m := se.serverMessage(); m != "" {
			return m
		}
		if m, ok := statusMessages[se.Status]; ok {
			return m
		}
	}
	if m := strings.TrimSpace(err.Error()); m != "" {
		return m
	}
	return UnexpectedErrorMessage
}

// IsStatus reports whether err is a StatusError with the given status.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
