package create_slot

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots/models"
)

// CreateSlotRequest HTTP request model. A weekly record sets dayOfWeek and
// omits specificDate; a one-off record does the opposite.
type CreateSlotRequest struct {
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`    // 0 (Sunday) - 6 (Saturday)
	StartTime    string  `json:"startTime"`              // "09:00"
	EndTime      string  `json:"endTime"`                // "10:30"
	SpecificDate *string `json:"specificDate,omitempty"` // "2025-10-15"
	Available    bool    `json:"available"`
}

// SlotRecordResponse HTTP response model
type SlotRecordResponse struct {
	ID           int64   `json:"id"`
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	IsRecurring  bool    `json:"isRecurring"`
	SpecificDate *string `json:"specificDate,omitempty"`
	Available    bool    `json:"available"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToServiceRequest converts the HTTP request into the service model.
func (r *CreateSlotRequest) ToServiceRequest() *models.SlotRecordRequest {
	return &models.SlotRecordRequest{
		DayOfWeek:    r.DayOfWeek,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		SpecificDate: r.SpecificDate,
		Available:    r.Available,
	}
}

// FromServiceResponse converts the service response into the HTTP response.
func FromServiceResponse(resp *models.SlotRecordResponse) *SlotRecordResponse {
	return &SlotRecordResponse{
		ID:           resp.ID,
		DayOfWeek:    resp.DayOfWeek,
		StartTime:    resp.StartTime,
		EndTime:      resp.EndTime,
		IsRecurring:  resp.IsRecurring,
		SpecificDate: resp.SpecificDate,
		Available:    resp.Available,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
