package review_priority

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	reviewPriority "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/review_priority"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// ReviewRequest HTTP request model. On approval the reviewer may assign a
// different window; absent fields keep the requested one.
type ReviewRequest struct {
	Decision  string  `json:"decision"` // "approve" | "deny"
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// ReviewResponse HTTP response model
type ReviewResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model,
// parsing the optional window assignment.
func (r *ReviewRequest) ToUseCaseRequest(bookingID int64) (*reviewPriority.Request, error) {
	req := &reviewPriority.Request{
		BookingID: bookingID,
		Decision:  r.Decision,
	}

	if r.Date != nil {
		d, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &d
	}
	if r.StartTime != nil {
		t, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &t
	}
	if r.EndTime != nil {
		t, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &t
	}

	return req, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *reviewPriority.Response) *ReviewResponse {
	return &ReviewResponse{
		ID:        resp.ID,
		Reference: resp.Reference,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Status:    resp.Status,
	}
}
