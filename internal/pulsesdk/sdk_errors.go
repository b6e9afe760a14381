package pulsesdk

import (
	"errors"
)

var (
	// sdk common
	ErrNoServerURL      = errors.New("sdk: server url missing")
	ErrInvalidServerURL = errors.New("sdk: server url must be an absolute http(s) url")
	ErrInvalidTimeout   = errors.New("sdk: timeout must not be negative")

	// health. The response body of a failed request is never inspected.
	ErrFetchFailed = errors.New("Failed to fetch health status")
)

// UnknownErrorMessage is shown when a failure carries no description.
const UnknownErrorMessage = "Unknown error"

// ErrorMessage returns the user-facing description of err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}
