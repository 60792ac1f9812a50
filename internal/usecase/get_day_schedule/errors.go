package get_day_schedule

import "errors"

var (
	// ErrInvalidDate is returned for a malformed or missing date
	ErrInvalidDate = errors.New("get_day_schedule: invalid date")

	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_day_schedule: internal error")
)
