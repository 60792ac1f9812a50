package list_bookings

import (
	"net/url"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/bookings/models"
)

// BookingItem is one booking of the listing.
type BookingItem struct {
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
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []BookingItem `json:"bookings"`
	Total    int           `json:"total"`
}

// ParseListRequest builds the service request from query parameters.
// Supported: startDate, endDate (YYYY-MM-DD), status, onlyPriority,
// includeInactive.
func ParseListRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}

	if v := query.Get("startDate"); v != "" {
		req.StartDate = &v
	}
	if v := query.Get("endDate"); v != "" {
		req.EndDate = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	req.OnlyPriority = query.Get("onlyPriority") == "true"
	req.IncludeInactive = query.Get("includeInactive") == "true"

	return req
}

// FromServiceResponse converts the service response into the HTTP response.
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	items := make([]BookingItem, len(resp.Bookings))
	for i, b := range resp.Bookings {
		items[i] = BookingItem{
			ID:            b.ID,
			Reference:     b.Reference,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			CustomerPhone: b.CustomerPhone,
			Date:          b.Date.Format(domain.DateFormat),
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			Topic:         b.Topic,
			Status:        b.Status,
			IsPriority:    b.IsPriority,
			CancelledAt:   b.CancelledAt,
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{
		Bookings: items,
		Total:    resp.Total,
	}
}
