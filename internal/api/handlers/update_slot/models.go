package update_slot

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots/models"
)

// UpdateSlotRequest HTTP request model. The whole record is replaced,
// including the recurring/one-off axis.
type UpdateSlotRequest struct {
	DayOfWeek    *int    `json:"dayOfWeek,omitempty"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	SpecificDate *string `json:"specificDate,omitempty"`
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
func (r *UpdateSlotRequest) ToServiceRequest() *models.SlotRecordRequest {
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
