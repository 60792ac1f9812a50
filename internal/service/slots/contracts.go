package slots

import (
	"context"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

// SlotRepository is the slot record store interface.
type SlotRepository interface {
	Create(ctx context.Context, record *domain.SlotRecord) (*domain.SlotRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.SlotRecord, error)
	List(ctx context.Context) ([]*domain.SlotRecord, error)
	Update(ctx context.Context, record *domain.SlotRecord) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
