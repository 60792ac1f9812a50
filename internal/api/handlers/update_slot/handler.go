package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidSlotID      = "identifiant de créneau invalide"
	msgInvalidSlotRecord  = "définition de créneau invalide"
	msgSlotNotFound       = "créneau introuvable"
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

// Handle PUT /api/v1/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/slots/{slotId} - Invalid slot id: %q", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/slots/{slotId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), slotID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PUT /admin/slots/{slotId} - Invalid slot record: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidSlotRecord)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /admin/slots/{slotId} - Slot record not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("PUT /admin/slots/{slotId} - Failed to update slot record: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/slots/{slotId} - Slot record updated: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
