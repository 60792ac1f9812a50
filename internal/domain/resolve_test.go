package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/ptr"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// 2025-10-17 is a Friday, 2025-10-18 a Saturday.
var (
	friday   = time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
)

func TestResolveOpenWindows_RecurringAndOneOff(t *testing.T) {
	records := []*SlotRecord{
		{ID: 1, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "10:00", Available: true},
		{ID: 2, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "14:00", EndTime: "15:30", Available: true},
		{ID: 3, SpecificDate: ptr.Ptr(saturday), StartTime: "11:00", EndTime: "12:00", Available: true},
	}

	t.Run("friday gets both recurring windows", func(t *testing.T) {
		windows := ResolveOpenWindows(records, friday)
		require.Len(t, windows, 2)
		assert.Equal(t, TimeWindow{StartTime: "09:00", EndTime: "10:00"}, windows[0])
		assert.Equal(t, TimeWindow{StartTime: "14:00", EndTime: "15:30"}, windows[1])
	})

	t.Run("saturday gets only the one-off window", func(t *testing.T) {
		windows := ResolveOpenWindows(records, saturday)
		require.Len(t, windows, 1)
		assert.Equal(t, TimeWindow{StartTime: "11:00", EndTime: "12:00"}, windows[0])
	})

	t.Run("other days are empty", func(t *testing.T) {
		sunday := saturday.AddDate(0, 0, 1)
		assert.Empty(t, ResolveOpenWindows(records, sunday))
	})
}

func TestResolveOpenWindows_SkipsUnavailable(t *testing.T) {
	records := []*SlotRecord{
		{ID: 1, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "10:00", Available: false},
		{ID: 2, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "14:00", EndTime: "15:00", Available: true},
	}

	windows := ResolveOpenWindows(records, friday)
	require.Len(t, windows, 1)
	assert.Equal(t, types.TimeString("14:00"), windows[0].StartTime)
}

func TestResolveOpenWindows_Ordering(t *testing.T) {
	records := []*SlotRecord{
		{ID: 7, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "14:00", EndTime: "15:00", Available: true},
		{ID: 3, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "10:00", Available: true},
		// Same start as record 3; the lower id must come first.
		{ID: 1, SpecificDate: ptr.Ptr(friday), StartTime: "09:00", EndTime: "11:00", Available: true},
	}

	windows := ResolveOpenWindows(records, friday)
	require.Len(t, windows, 3)
	assert.Equal(t, types.TimeString("11:00"), windows[0].EndTime) // id 1
	assert.Equal(t, types.TimeString("10:00"), windows[1].EndTime) // id 3
	assert.Equal(t, types.TimeString("14:00"), windows[2].StartTime)
}

func TestResolveOpenWindows_NoCoalescing(t *testing.T) {
	records := []*SlotRecord{
		{ID: 1, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "11:00", Available: true},
		{ID: 2, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "10:00", EndTime: "12:00", Available: true},
	}

	// Overlapping definitions are surfaced as-is.
	windows := ResolveOpenWindows(records, friday)
	require.Len(t, windows, 2)
}

func TestTimeWindow_Contains(t *testing.T) {
	w := TimeWindow{StartTime: "09:00", EndTime: "10:30"}

	assert.True(t, w.Contains("09:00", "10:30")) // exact fit
	assert.True(t, w.Contains("09:15", "10:00"))
	assert.False(t, w.Contains("08:59", "10:00"))
	assert.False(t, w.Contains("09:15", "10:31"))
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{StartTime: "10:00", EndTime: "11:00"}

	assert.True(t, b.Overlaps("10:30", "11:30"))
	assert.True(t, b.Overlaps("09:30", "10:01"))
	assert.True(t, b.Overlaps("10:00", "11:00"))

	// Half-open: touching edges do not conflict.
	assert.False(t, b.Overlaps("11:00", "12:00"))
	assert.False(t, b.Overlaps("09:00", "10:00"))
}

func TestBooking_StateQueries(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		active       bool
		occupies     bool
		cancellable  bool
		awaitsPay    bool
		awaitsReview bool
	}{
		{StatusPending, true, false, true, true, false},
		{StatusPendingReview, true, false, true, false, true},
		{StatusCompleted, true, true, false, false, false},
		{StatusFailed, false, false, false, false, false},
		{StatusDenied, false, false, false, false, false},
		{StatusCancelled, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.occupies, b.OccupiesInterval())
			assert.Equal(t, tt.cancellable, b.CanBeCancelled())
			assert.Equal(t, tt.awaitsPay, b.AwaitsPayment())
			assert.Equal(t, tt.awaitsReview, b.AwaitsReview())
		})
	}
}
