package payment_callback

import (
	"errors"
	"net/http"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	confirmPayment "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "corps de la requête invalide"
	msgInvalidOutcome     = "résultat de paiement invalide, attendu completed ou failed"
	msgBookingNotFound    = "réservation introuvable"
	msgNotAwaitingPayment = "la réservation n'attend pas de paiement"
	msgDoubleBooking      = "ce créneau vient d'être réservé"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/callback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentCallbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/callback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/callback - Invalid outcome: reference=%s, outcome=%s",
				req.Reference, req.Outcome)
			handlers.RespondBadRequest(w, msgInvalidOutcome)

		case errors.Is(err, confirmPayment.ErrBookingNotFound):
			h.logger.Warn("POST /payments/callback - Booking not found: reference=%s", req.Reference)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmPayment.ErrNotAwaitingPayment):
			h.logger.Warn("POST /payments/callback - Booking not awaiting payment: reference=%s", req.Reference)
			handlers.RespondError(w, http.StatusConflict, msgNotAwaitingPayment)

		case errors.Is(err, confirmPayment.ErrDoubleBooking):
			h.logger.Warn("POST /payments/callback - Lost interval race: reference=%s", req.Reference)
			handlers.RespondError(w, http.StatusConflict, msgDoubleBooking)

		default:
			h.logger.Error("POST /payments/callback - Failed to process payment: reference=%s, error=%v",
				req.Reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/callback - Payment processed: reference=%s, status=%s",
		result.Reference, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
