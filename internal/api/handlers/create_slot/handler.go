package create_slot

import (
	"errors"
	"net/http"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidSlotRecord  = "définition de créneau invalide"
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

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Invalid slot record: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlotRecord)

		default:
			h.logger.Error("POST /admin/slots - Failed to create slot record: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot record created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
