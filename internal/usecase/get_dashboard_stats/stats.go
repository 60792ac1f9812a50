package get_dashboard_stats

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

// aggregate derives the dashboard counters from the booking set. Pure
// function: calling it twice with the same inputs yields identical stats.
func aggregate(bookings []*domain.Booking, referenceDate time.Time) Stats {
	stats := Stats{
		ByTopic: make(map[string]int),
	}

	weekStart, weekEnd := weekBounds(referenceDate)

	for _, b := range bookings {
		stats.Total++
		if b.IsPriority {
			stats.PriorityCount++
		}
		if !b.Date.Before(weekStart) && b.Date.Before(weekEnd) {
			stats.WeekCount++
		}
		stats.ByTopic[b.Topic]++
	}

	return stats
}

// weekBounds returns the [Monday 00:00, next Monday 00:00) window of the
// week containing the reference date.
func weekBounds(reference time.Time) (time.Time, time.Time) {
	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, reference.Location())

	// time.Weekday numbers Sunday as 0; shift so Monday opens the week.
	offset := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -offset)

	return weekStart, weekStart.AddDate(0, 0, 7)
}
