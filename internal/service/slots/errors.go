package slots

import "errors"

var (
	// ErrSlotNotFound is returned when the slot record does not exist
	ErrSlotNotFound = errors.New("slots service: slot record not found")

	// ErrInvalidInput is returned for malformed slot record data
	ErrInvalidInput = errors.New("slots service: invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("slots service: internal error")
)
