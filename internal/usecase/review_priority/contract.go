package review_priority

import (
	"context"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/integrations/notifier"
)

// BookingRepository is the booking store interface.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Reschedule(ctx context.Context, id int64, booking *domain.Booking) error
}

// TransactionManager runs the review decision in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers booking events fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, event notifier.BookingEvent) error
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
