package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrIntervalTaken is returned when the completed-bookings exclusion
	// constraint rejects a write: another completed booking already
	// occupies an overlapping interval on the same date.
	ErrIntervalTaken = errors.New("booking.repository: interval already taken")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrStoreUnavailable is returned when a query cannot be executed.
	// Propagated unchanged; retry policy belongs to the caller's
	// infrastructure, not to this service.
	ErrStoreUnavailable = errors.New("booking.repository: store unavailable")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
