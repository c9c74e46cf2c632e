package api

import (
	"errors"
	"strings"
)

// Response is the uniform envelope returned by every service call and every wellbe API
// endpoint. When Success is false Data is the zero value and Error is populated.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Response[T] {
	return Response[T]{Success: true, Data: data}
}

// Failed builds a failed envelope carrying msg.
func Failed[T any](msg string) Response[T] {
	return Response[T]{Success: false, Error: msg}
}

// Fail builds a failed envelope from err. The error text is used when present,
// otherwise fallback.
func Fail[T any](err error, fallback string) Response[T] {
	msg := fallback
	if err != nil && strings.TrimSpace(err.Error()) != "" {
		msg = err.Error()
	}
	return Failed[T](msg)
}

// Result unwraps the envelope into a value and an error.
func (r Response[T]) Result() (T, error) {
	if !r.Success {
		var zero T
		msg := r.Error
		if msg == "" {
			msg = r.Message
		}
		if msg == "" {
			msg = "request failed"
		}
		return zero, errors.New(msg)
	}
	return r.Data, nil
}

// MessageResponse is the payload of endpoints that only confirm an action.
type MessageResponse struct {
	Message string `json:"message"`
}
