package errs

import (
	"errors"
	"net/http"
)

// Err represents an expected error that is safe to show to the API caller.
type Err struct { //nolint:errname
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

var _ error = (*Err)(nil)

// New creates a new expected error with the given message and 400 status.
func New(message string) *Err {
	return &Err{Message: message, StatusCode: http.StatusBadRequest}
}

// NewWithStatus creates a new expected error with a custom HTTP status.
func NewWithStatus(message string, statusCode int) *Err {
	return &Err{Message: message, StatusCode: statusCode}
}

func (e *Err) Error() string {
	return e.Message
}

// IsExpected checks if the given error or any error it wraps is of custom Err type.
func IsExpected(err error) bool {
	var e *Err
	return errors.As(err, &e)
}

// StatusCode returns the HTTP status attached to an expected error,
// or 500 for anything else.
func StatusCode(err error) int {
	var e *Err
	if errors.As(err, &e) && e.StatusCode != 0 {
		return e.StatusCode
	}

	return http.StatusInternalServerError
}

// Message returns the message of the expected error found in err's chain,
// or an empty string when there is none.
func Message(err error) string {
	var e *Err
	if errors.As(err, &e) {
		return e.Message
	}

	return ""
}
