package domain

import (
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// SlotRecord is an administrator-defined availability rule: either a weekly
// recurring window (DayOfWeek governs) or a one-off window for a specific
// date (SpecificDate governs). Exactly one of the two axes is active per
// record. Booking never mutates slot records; availability on a date is
// always derived at read time.
type SlotRecord struct {
	ID           int64
	DayOfWeek    int // 0 (Sunday) - 6 (Saturday), meaningful only when recurring
	StartTime    types.TimeString
	EndTime      types.TimeString
	IsRecurring  bool
	SpecificDate *time.Time // required when not recurring
	Available    bool       // administrative on/off switch, independent of booking state

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo reports whether the record produces a window on the given date.
// The administrative Available flag is not consulted here.
func (s *SlotRecord) AppliesTo(date time.Time) bool {
	if s.IsRecurring {
		return int(date.Weekday()) == s.DayOfWeek
	}
	if s.SpecificDate == nil {
		return false
	}
	return sameDay(*s.SpecificDate, date)
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
