package create_booking

import (
	"errors"
	"net/http"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	createBooking "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidDateOrTime  = "date ou heure invalide, attendu YYYY-MM-DD et HH:MM"
	msgInvalidInput       = "données de réservation invalides"
	msgInvalidDate        = "date de réservation invalide"
	msgSlotUnavailable    = "le créneau demandé n'est pas disponible"
	msgOutOfHorizon       = "la date dépasse l'horizon des demandes urgentes"
	msgDoubleBooking      = "ce créneau vient d'être réservé"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: date=%s, start=%s", req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrOutOfHorizon):
			h.logger.Warn("POST /bookings - Date outside expedite horizon: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgOutOfHorizon)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, start=%s, end=%s",
				req.Date, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrDoubleBooking):
			h.logger.Warn("POST /bookings - Interval already booked: date=%s, start=%s, end=%s",
				req.Date, req.StartTime, req.EndTime)
			handlers.RespondError(w, http.StatusConflict, msgDoubleBooking)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, reference=%s, status=%s",
		result.ID, result.Reference, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
