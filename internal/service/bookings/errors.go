package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("bookings service: booking not found")

	// ErrCannotCancel is returned when the booking already reached a
	// terminal state; completed bookings are released only by an
	// administrative cancellation, not through this path
	ErrCannotCancel = errors.New("bookings service: booking cannot be cancelled")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("bookings service: invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("bookings service: internal error")
)
