package slot

import "errors"

var (
	// ErrSlotNotFound is returned when a slot record does not exist
	ErrSlotNotFound = errors.New("slot.repository: slot record not found")

	// ErrBuildQuery is returned when a SQL query cannot be built
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrStoreUnavailable is returned when a query cannot be executed.
	// Propagated unchanged; retry policy belongs to the caller's
	// infrastructure, not to this service.
	ErrStoreUnavailable = errors.New("slot.repository: store unavailable")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
