package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/slots"
)

const (
	msgInvalidSlotID = "identifiant de créneau invalide"
	msgSlotNotFound  = "créneau introuvable"
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

// Handle DELETE /api/v1/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/slots/{slotId} - Invalid slot id: %q", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/slots/{slotId} - Slot record not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("DELETE /admin/slots/{slotId} - Failed to delete slot record: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slots/{slotId} - Slot record deleted: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
