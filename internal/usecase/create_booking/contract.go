package create_booking

import (
	"context"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

// BookingRepository is the booking store interface.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// SlotRepository is the slot record store interface.
type SlotRepository interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.SlotRecord, error)
}

// TransactionManager runs the admission sequence in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider abstracts the current time for testing.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
