package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product lookup misses.
	ErrProductNotFound = errors.New("Product not found")
	// ErrAlreadyVoted is returned when a caller upvotes a product twice.
	ErrAlreadyVoted = errors.New("Already voted")
	// ErrAlreadyReported is returned when a caller reports a product twice.
	ErrAlreadyReported = errors.New("Already reported")
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("User not found")
	// ErrCouponNotFound is returned when a coupon code lookup misses.
	ErrCouponNotFound = errors.New("Coupon not found")
	// ErrNotOwner is returned when a caller mutates a product they do not own.
	ErrNotOwner = errors.New("Forbidden access")
	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = errors.New("Invalid amount")
	// ErrIntentNotFound is returned when a payment references an unknown client secret.
	ErrIntentNotFound = errors.New("Payment intent not found")
)

// ErrorResponse is the JSON body for every error status.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors surface
// as 500 with the raw error message in the body.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCouponNotFound),
		errors.Is(err, ErrIntentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyVoted),
		errors.Is(err, ErrAlreadyReported),
		errors.Is(err, ErrInvalidAmount):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotOwner):
		return NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
