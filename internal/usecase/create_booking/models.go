package create_booking

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// Request is an admission request for a consultation booking.
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Topic         string
	// IsPriority marks an expedited out-of-band request: it bypasses the
	// published availability and awaits manual review instead.
	IsPriority bool
}

// Response is the admitted booking.
type Response struct {
	ID         int64
	Reference  string
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Topic      string
	Status     string
	IsPriority bool
	CreatedAt  time.Time
}
