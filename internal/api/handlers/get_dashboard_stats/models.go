package get_dashboard_stats

import (
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	getDashboardStats "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/get_dashboard_stats"
)

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	ReferenceDate string         `json:"referenceDate"`
	Total         int            `json:"total"`
	PriorityCount int            `json:"priorityCount"`
	WeekCount     int            `json:"weekCount"`
	ByTopic       map[string]int `json:"byTopic"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *getDashboardStats.Response) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		ReferenceDate: resp.ReferenceDate.Format(domain.DateFormat),
		Total:         resp.Stats.Total,
		PriorityCount: resp.Stats.PriorityCount,
		WeekCount:     resp.Stats.WeekCount,
		ByTopic:       resp.Stats.ByTopic,
	}
}
