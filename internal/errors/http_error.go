package errors

import (
	"errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
)

// Business-rule sentinels surfaced by the booking workflow.
var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingTerminal      = errors.New("booking is in a terminal state")
	ErrDocumentsNotVerified = errors.New("documents not verified")
	ErrUnknownDocumentType  = errors.New("unknown document type")
	ErrUnknownDocumentState = errors.New("unknown document status")
	ErrInvalidChargeAmount  = errors.New("charge amount is not a number")
)
