package get_dashboard_stats

import (
	"net/http"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/api/handlers"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	getDashboardStats "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/get_dashboard_stats"
)

const (
	msgInvalidReferenceDate = "format de date invalide, attendu YYYY-MM-DD"
)

type Handler struct {
	useCase GetDashboardStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetDashboardStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/dashboard
// An optional referenceDate query parameter anchors the weekly counter;
// it defaults to today.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var referenceDate time.Time
	if raw := r.URL.Query().Get("referenceDate"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/dashboard - Invalid reference date: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidReferenceDate)
			return
		}
		referenceDate = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getDashboardStats.Request{ReferenceDate: referenceDate})
	if err != nil {
		h.logger.Error("GET /admin/dashboard - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/dashboard - Stats computed: total=%d", result.Stats.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
