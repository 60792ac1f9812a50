package domain

// Default configuration values
const (
	// DefaultExpediteHorizonDays: priority requests are accepted up to
	// today + N days inclusive
	DefaultExpediteHorizonDays = 2
)

// Business validation constants
const (
	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday

	MaxTopicLength        = 200
	MaxCustomerNameLength = 150
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses are statuses that do not occupy capacity and are
// excluded from listings unless explicitly requested.
var InactiveStatuses = []BookingStatus{
	StatusFailed,
	StatusDenied,
	StatusCancelled,
}

// ActiveStatuses are statuses of bookings still moving through the
// admission flow or already confirmed.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusPendingReview,
	StatusCompleted,
}
