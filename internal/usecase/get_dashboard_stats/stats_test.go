package get_dashboard_stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

// 2025-10-17 is a Friday; its ISO week runs Monday 2025-10-13 through
// Sunday 2025-10-19.
var reference = time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2025, 10, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_Counters(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Date: day(14), Topic: "fiscalité", IsPriority: true, Status: domain.StatusCompleted},
		{ID: 2, Date: day(16), Topic: "droit du travail", IsPriority: true, Status: domain.StatusPendingReview},
		{ID: 3, Date: day(28), Topic: "fiscalité", Status: domain.StatusPending},
	}

	stats := aggregate(bookings, reference)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.PriorityCount)
	assert.Equal(t, 2, stats.WeekCount)
	assert.Equal(t, map[string]int{"fiscalité": 2, "droit du travail": 1}, stats.ByTopic)
}

func TestAggregate_IsIdempotent(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Date: day(14), Topic: "fiscalité", Status: domain.StatusCompleted},
		{ID: 2, Date: day(15), Topic: "fiscalité", Status: domain.StatusPending},
	}

	first := aggregate(bookings, reference)
	second := aggregate(bookings, reference)

	assert.Equal(t, first, second)
}

func TestAggregate_EmptySet(t *testing.T) {
	stats := aggregate(nil, reference)

	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.PriorityCount)
	assert.Zero(t, stats.WeekCount)
	assert.Empty(t, stats.ByTopic)
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		wantStart time.Time
	}{
		{"friday anchors to its monday", day(17), day(13)},
		{"monday anchors to itself", day(13), day(13)},
		{"sunday still belongs to the week", day(19), day(13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekBounds(tt.reference)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 7), end)
		})
	}
}

func TestWeekBounds_HalfOpenWindow(t *testing.T) {
	start, end := weekBounds(reference)

	// Monday is in, next Monday is out.
	assert.False(t, day(13).Before(start))
	assert.True(t, day(19).Before(end))
	assert.False(t, day(20).Before(end))
}

func TestAggregate_WeekCountCoversWholeWeek(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Date: day(13), Topic: "a"}, // monday, in
		{ID: 2, Date: day(19), Topic: "a"}, // sunday, in
		{ID: 3, Date: day(12), Topic: "a"}, // previous sunday, out
		{ID: 4, Date: day(20), Topic: "a"}, // next monday, out
	}

	stats := aggregate(bookings, reference)
	require.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.WeekCount)
}
