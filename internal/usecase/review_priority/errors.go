package review_priority

import "errors"

var (
	// ErrInvalidInput is returned for a malformed review decision
	ErrInvalidInput = errors.New("review_priority: invalid input data")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("review_priority: booking not found")

	// ErrNotPendingReview is returned when the booking is not a priority
	// request awaiting review
	ErrNotPendingReview = errors.New("review_priority: booking is not pending review")

	// ErrDoubleBooking is returned when the assigned window collides with
	// a completed booking
	ErrDoubleBooking = errors.New("review_priority: interval already booked")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("review_priority: internal error")
)
