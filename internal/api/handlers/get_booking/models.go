package get_booking

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64      `json:"id"`
	Reference     string     `json:"reference"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	CustomerPhone string     `json:"customerPhone"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	Topic         string     `json:"topic"`
	Status        string     `json:"status"`
	IsPriority    bool       `json:"isPriority"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}

// FromServiceResponse converts the service response into the HTTP response.
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		Reference:     resp.Reference,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime,
		EndTime:       resp.EndTime,
		Topic:         resp.Topic,
		Status:        resp.Status,
		IsPriority:    resp.IsPriority,
		CancelledAt:   resp.CancelledAt,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
