package create_booking

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	createBooking "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/create_booking"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "11:00"
	Topic         string `json:"topic"`
	IsPriority    bool   `json:"isPriority"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	Reference  string `json:"reference"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Topic      string `json:"topic"`
	Status     string `json:"status"`
	IsPriority bool   `json:"isPriority"`
	CreatedAt  string `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model,
// parsing the date and time fields.
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		Topic:         r.Topic,
		IsPriority:    r.IsPriority,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		Reference:  resp.Reference,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		Topic:      resp.Topic,
		Status:     resp.Status,
		IsPriority: resp.IsPriority,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
