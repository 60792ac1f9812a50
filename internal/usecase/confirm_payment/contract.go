package confirm_payment

import (
	"context"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/integrations/notifier"
)

// BookingRepository is the booking store interface.
type BookingRepository interface {
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TransactionManager runs the confirmation sequence in one transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier delivers booking events fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, event notifier.BookingEvent) error
}

// Logger is the logging interface of the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
