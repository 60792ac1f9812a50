package confirm_payment

import "errors"

var (
	// ErrInvalidInput is returned for a malformed payment signal
	ErrInvalidInput = errors.New("confirm_payment: invalid input data")

	// ErrBookingNotFound is returned when the reference matches no booking
	ErrBookingNotFound = errors.New("confirm_payment: booking not found")

	// ErrNotAwaitingPayment is returned when the booking is not in the
	// pending state (already confirmed, failed, cancelled or still under
	// review)
	ErrNotAwaitingPayment = errors.New("confirm_payment: booking is not awaiting payment")

	// ErrDoubleBooking is returned when another completed booking claimed
	// an overlapping interval first. The losing booking is marked failed.
	// Expected under concurrent confirmations, not a bug.
	ErrDoubleBooking = errors.New("confirm_payment: interval already booked")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("confirm_payment: internal error")
)
