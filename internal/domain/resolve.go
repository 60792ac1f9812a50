package domain

import (
	"sort"
	"time"
)

// ResolveOpenWindows computes the effective open windows for a date from
// the candidate slot records: recurring records matching the weekday plus
// one-off records pinned to the date, with the administratively disabled
// ones dropped. Windows are ordered by start time ascending, ties broken
// by record id. Overlapping administrator-defined windows are surfaced
// as-is, without coalescing: keeping definitions consistent is the
// administrator's responsibility.
func ResolveOpenWindows(records []*SlotRecord, date time.Time) []TimeWindow {
	type candidate struct {
		id     int64
		window TimeWindow
	}

	candidates := make([]candidate, 0, len(records))
	for _, record := range records {
		if !record.AppliesTo(date) {
			continue
		}
		if !record.Available {
			continue
		}
		candidates = append(candidates, candidate{
			id: record.ID,
			window: TimeWindow{
				StartTime: record.StartTime,
				EndTime:   record.EndTime,
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].window.StartTime != candidates[j].window.StartTime {
			return candidates[i].window.StartTime.IsBefore(candidates[j].window.StartTime)
		}
		return candidates[i].id < candidates[j].id
	})

	windows := make([]TimeWindow, len(candidates))
	for i, c := range candidates {
		windows[i] = c.window
	}
	return windows
}
