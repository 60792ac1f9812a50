package models

import (
	"errors"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

var (
	// ErrInvalidStatus is returned for an unknown status value
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate is returned for an unparsable date value
	ErrInvalidDate = errors.New("invalid date")
)

// ListBookingsRequest is the back-office listing filter.
type ListBookingsRequest struct {
	StartDate       *string // YYYY-MM-DD
	EndDate         *string // YYYY-MM-DD
	Status          *string
	OnlyPriority    bool
	IncludeInactive bool
}

// ToDomainFilter converts the request into the repository filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if r.StartDate != nil {
		d, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &d
	}
	if r.EndDate != nil {
		d, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &d
	}
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	filter.OnlyPriority = r.OnlyPriority
	filter.IncludeInactive = r.IncludeInactive

	return filter, nil
}

// BookingResponse is the service-level view of a booking.
type BookingResponse struct {
	ID            int64
	Reference     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Date          time.Time
	StartTime     string
	EndTime       string
	Topic         string
	Status        string
	IsPriority    bool
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingListResponse is a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse
	Total    int
}

// FromDomainBooking converts a domain booking.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Date:          b.Date,
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Topic:         b.Topic,
		Status:        string(b.Status),
		IsPriority:    b.IsPriority,
		CancelledAt:   b.CancelledAt,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain bookings.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
		Total:    len(bookings),
	}
	for i, b := range bookings {
		result.Bookings[i] = *FromDomainBooking(b)
	}
	return result
}

// ToDomainBookingStatus validates and converts a status string.
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPending,
		domain.StatusPendingReview,
		domain.StatusCompleted,
		domain.StatusFailed,
		domain.StatusDenied,
		domain.StatusCancelled:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
