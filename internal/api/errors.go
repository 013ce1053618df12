package api

import (
	"errors"
	"fmt"
)

// Sentinel errors describing the failure taxonomy of the backend API.
// Callers classify failures with errors.Is and surface them as toasts.
var (
	// ErrAuthRequired is returned when no usable token is stored or the
	// backend answered 401. The session is cleared before it is returned.
	ErrAuthRequired = errors.New("authentication required, please log in again")

	// ErrPermission is returned on 403. The session is left untouched.
	ErrPermission = errors.New("you do not have permission to access this resource")

	// ErrNotFound is returned on 404.
	ErrNotFound = errors.New("the requested resource was not found")

	// ErrServer is returned on any 5xx status.
	ErrServer = errors.New("server error, please try again later")

	// ErrNetwork is returned when the request never reached the backend
	// (connection refused, DNS failure, timeout).
	ErrNetwork = errors.New("cannot connect to server, please check your connection")
)

// APIError carries the HTTP status and the error message the backend sent in
// its JSON body ("message" or "error" key), falling back to a generic
// "HTTP <status>" message.
type APIError struct {
	// Status is the HTTP status code of the failed response.
	Status int
	// Message is the human-readable error description.
	Message string
	// err is the matching sentinel, when the status maps to one.
	err error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Unwrap lets errors.Is match the sentinel for the status class.
func (e *APIError) Unwrap() error {
	return e.err
}

// errorBody is the JSON error envelope the backend uses.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}
