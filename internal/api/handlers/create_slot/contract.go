package create_slot

import (
	"context"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots/models"
)

type SlotService interface {
	Create(ctx context.Context, req *models.SlotRecordRequest) (*models.SlotRecordResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
