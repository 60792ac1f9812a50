package get_day_schedule

import (
	"context"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

// SlotRepository is the slot record store interface.
type SlotRepository interface {
	ListForDate(ctx context.Context, date time.Time) ([]*domain.SlotRecord, error)
}

// BookingRepository is the booking store interface.
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger is the logging interface of the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
