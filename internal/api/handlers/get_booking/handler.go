package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/bookings"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/service/bookings/models"
)

const (
	msgBookingNotFound = "réservation introuvable"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
// Accepts either the numeric id or the public reference.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["bookingId"]

	var (
		result *models.BookingResponse
		err    error
	)
	if id, parseErr := strconv.ParseInt(key, 10, 64); parseErr == nil {
		result, err = h.service.GetByID(r.Context(), id)
	} else {
		result, err = h.service.GetByReference(r.Context(), key)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{bookingId} - Booking not found: key=%s", key)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/{bookingId} - Failed to fetch booking: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{bookingId} - Booking fetched: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
