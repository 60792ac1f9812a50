package get_dashboard_stats

import "time"

// Request asks for dashboard statistics anchored at a reference date.
// A zero ReferenceDate means "now".
type Request struct {
	ReferenceDate time.Time
}

// Stats are the derived operational counters. Recomputed on every call;
// nothing is maintained incrementally, so the numbers can never go stale
// against the booking set.
type Stats struct {
	Total         int
	PriorityCount int
	WeekCount     int
	ByTopic       map[string]int
}

// Response carries the stats and the anchor used.
type Response struct {
	ReferenceDate time.Time
	Stats         Stats
}
