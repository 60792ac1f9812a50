package list_slots

import (
	"context"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots/models"
)

type SlotService interface {
	List(ctx context.Context) (*models.SlotRecordListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
