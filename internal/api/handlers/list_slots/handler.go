package list_slots

import (
	"net/http"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/slots - Failed to list slot records: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/slots - Listed %d slot records", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
