package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request fields
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate is returned for a malformed or past booking date
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrSlotUnavailable is returned when the requested interval is not
	// contained in any published window for that date
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrOutOfHorizon is returned when a priority request falls outside
	// the expedite horizon
	ErrOutOfHorizon = errors.New("create_booking: date is outside the expedite horizon")

	// ErrDoubleBooking is returned when a completed booking already
	// occupies an overlapping interval. Expected under concurrent
	// requests, not a bug.
	ErrDoubleBooking = errors.New("create_booking: interval already booked")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("create_booking: internal error")
)
