package list_slots

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots/models"
)

// SlotRecordItem is one slot record of the listing.
type SlotRecordItem struct {
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

// SlotRecordListResponse HTTP response model
type SlotRecordListResponse struct {
	Records []SlotRecordItem `json:"records"`
	Total   int              `json:"total"`
}

// FromServiceResponse converts the service response into the HTTP response.
func FromServiceResponse(resp *models.SlotRecordListResponse) *SlotRecordListResponse {
	items := make([]SlotRecordItem, len(resp.Records))
	for i, s := range resp.Records {
		items[i] = SlotRecordItem{
			ID:           s.ID,
			DayOfWeek:    s.DayOfWeek,
			StartTime:    s.StartTime,
			EndTime:      s.EndTime,
			IsRecurring:  s.IsRecurring,
			SpecificDate: s.SpecificDate,
			Available:    s.Available,
			CreatedAt:    s.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &SlotRecordListResponse{
		Records: items,
		Total:   resp.Total,
	}
}
