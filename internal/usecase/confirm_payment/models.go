package confirm_payment

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// Payment outcomes delivered by the payment collaborator.
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
)

// Request is the asynchronous payment signal for one booking.
type Request struct {
	Reference string
	Outcome   string // completed or failed
}

// Response is the booking after the transition.
type Response struct {
	ID        int64
	Reference string
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    string
}
