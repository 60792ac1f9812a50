package review_priority

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	reviewPriority "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/review_priority"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidBookingID   = "identifiant de réservation invalide"
	msgInvalidDateOrTime  = "date ou heure invalide, attendu YYYY-MM-DD et HH:MM"
	msgInvalidDecision    = "décision invalide, attendu approve ou deny"
	msgBookingNotFound    = "réservation introuvable"
	msgNotPendingReview   = "la réservation n'est pas en attente de revue"
	msgDoubleBooking      = "ce créneau vient d'être réservé"
)

type Handler struct {
	useCase ReviewPriorityUseCase
	logger  Logger
}

func NewHandler(useCase ReviewPriorityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{bookingId}/review - Invalid booking id: %q", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{bookingId}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PATCH /admin/bookings/{bookingId}/review - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reviewPriority.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{bookingId}/review - Invalid decision: booking_id=%d, decision=%s",
				bookingID, req.Decision)
			handlers.RespondBadRequest(w, msgInvalidDecision)

		case errors.Is(err, reviewPriority.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{bookingId}/review - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, reviewPriority.ErrNotPendingReview):
			h.logger.Warn("PATCH /admin/bookings/{bookingId}/review - Not pending review: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPendingReview)

		case errors.Is(err, reviewPriority.ErrDoubleBooking):
			h.logger.Warn("PATCH /admin/bookings/{bookingId}/review - Assigned window already booked: booking_id=%d",
				bookingID)
			handlers.RespondError(w, http.StatusConflict, msgDoubleBooking)

		default:
			h.logger.Error("PATCH /admin/bookings/{bookingId}/review - Failed to review booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{bookingId}/review - Review applied: booking_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
