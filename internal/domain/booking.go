package domain

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending: admitted, awaiting payment confirmation
	StatusPending BookingStatus = "pending"
	// StatusPendingReview: priority request awaiting manual review
	StatusPendingReview BookingStatus = "pending_review"
	// StatusCompleted: payment confirmed, the interval is occupied
	StatusCompleted BookingStatus = "completed"
	// StatusFailed: payment failed or lost the confirmation race
	StatusFailed BookingStatus = "failed"
	// StatusDenied: priority request denied during review
	StatusDenied BookingStatus = "denied"
	// StatusCancelled: abandoned by the customer before completion
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a consultation booking. A completed booking occupies
// the half-open interval [StartTime, EndTime) on Date; no two completed
// bookings on the same date may overlap.
type Booking struct {
	ID        int64
	Reference string // public identifier handed to the payment collaborator

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Topic      string
	Status     BookingStatus
	IsPriority bool

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still counts toward the flow
// (pending, pending review or completed).
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending ||
		b.Status == StatusPendingReview ||
		b.Status == StatusCompleted
}

// OccupiesInterval returns true if the booking permanently occupies its
// time interval. Only completed bookings block other bookings.
func (b *Booking) OccupiesInterval() bool {
	return b.Status == StatusCompleted
}

// CanBeCancelled returns true while the booking has not reached a terminal
// state. Cancelling a not-yet-completed booking is a pure state discard.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusPendingReview
}

// AwaitsPayment returns true if the booking is waiting for the payment
// collaborator's signal.
func (b *Booking) AwaitsPayment() bool {
	return b.Status == StatusPending
}

// AwaitsReview returns true if the booking is a priority request waiting
// for manual scheduling.
func (b *Booking) AwaitsReview() bool {
	return b.Status == StatusPendingReview
}

// Overlaps reports whether the booking's interval overlaps [start, end).
// Half-open semantics: touching edges do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && start.IsBefore(b.EndTime)
}

// BookingsFilter is the flexible listing filter used by the repository.
// Date restricts to a single day; StartDate/EndDate to a period.
type BookingsFilter struct {
	Date            *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	OnlyPriority    bool
	IncludeInactive bool
}
