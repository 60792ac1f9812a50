package get_dashboard_stats

import "errors"

var (
	// ErrInternal is returned on internal usecase failures
	ErrInternal = errors.New("get_dashboard_stats: internal error")
)
