package get_day_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	getDaySchedule "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/get_day_schedule"
)

const (
	msgInvalidDate = "format de date invalide, attendu YYYY-MM-DD"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rawDate := vars["date"]

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /schedule/{date} - Invalid date: %q", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidDate):
			h.logger.Warn("GET /schedule/{date} - Invalid date: %q", rawDate)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/{date} - Failed to resolve schedule: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date} - Resolved %d windows for date=%s", len(result.Windows), rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
