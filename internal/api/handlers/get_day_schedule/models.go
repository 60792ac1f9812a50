package get_day_schedule

import (
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	getDaySchedule "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/usecase/get_day_schedule"
)

// WindowResponse is one open window of the day.
type WindowResponse struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "10:30"
	Booked    bool   `json:"booked"`
}

// DayScheduleResponse HTTP response model. Windows is always present,
// possibly empty.
type DayScheduleResponse struct {
	Date    string           `json:"date"` // "2025-10-15"
	Windows []WindowResponse `json:"windows"`
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *getDaySchedule.Response) *DayScheduleResponse {
	windows := make([]WindowResponse, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = WindowResponse{
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
			Booked:    w.Booked,
		}
	}
	return &DayScheduleResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Windows: windows,
	}
}
