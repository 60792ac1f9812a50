package review_priority

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// Decision values of a review.
const (
	DecisionApprove = "approve"
	DecisionDeny    = "deny"
)

// Request is a reviewer's decision on a priority booking. On approval the
// reviewer may assign a different window than the one the customer asked
// for; absent fields keep the requested window.
type Request struct {
	BookingID int64
	Decision  string

	// Optional window reassignment, only meaningful on approval
	Date      *time.Time
	StartTime *types.TimeString
	EndTime   *types.TimeString
}

// Response is the booking after the review.
type Response struct {
	ID        int64
	Reference string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
}
