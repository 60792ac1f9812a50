package domain

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// TimeWindow is one open window on a concrete date, annotated with its
// occupancy. Booked means a completed booking overlaps the window; it is a
// separate axis from the administrative Available flag on the SlotRecord.
type TimeWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Booked    bool
}

// Contains reports whether [start, end) fits fully inside the window.
// A request matching the window edges exactly is contained.
func (w *TimeWindow) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// DaySchedule is the derived, never-persisted set of open windows for one
// date. It is recomputed on demand so that slot record edits are always
// reflected immediately.
type DaySchedule struct {
	Date    time.Time
	Windows []TimeWindow
}
