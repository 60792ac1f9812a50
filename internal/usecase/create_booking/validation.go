package create_booking

import (
	"fmt"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

// validateRequest checks that all request fields are well-formed and that
// the interval is positive (startTime < endTime).
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}
	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}
	if req.Topic == "" {
		return fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}
	if len(req.Topic) > domain.MaxTopicLength {
		return fmt.Errorf("%w: topic is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}

// validateHorizon checks that a priority date falls within the expedite
// horizon: today through today + horizonDays inclusive.
func validateHorizon(date time.Time, now time.Time, horizonDays int) error {
	maxDate := startOfDay(now).AddDate(0, 0, horizonDays)
	if startOfDay(date).After(maxDate) {
		return fmt.Errorf("%w: priority requests accepted up to %d days ahead", ErrOutOfHorizon, horizonDays)
	}
	return nil
}

// containedInAnyWindow checks the requested interval against the resolved
// open windows. Exact edge matches are admitted; any overflow past either
// edge is not.
func containedInAnyWindow(windows []domain.TimeWindow, start, end types.TimeString) bool {
	for _, w := range windows {
		if w.Contains(start, end) {
			return true
		}
	}
	return false
}

// findConflict returns the first completed booking overlapping [start, end).
func findConflict(bookings []*domain.Booking, start, end types.TimeString) *domain.Booking {
	for _, b := range bookings {
		if b.OccupiesInterval() && b.Overlaps(start, end) {
			return b
		}
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isDateInPast(date, now time.Time) bool {
	return startOfDay(date).Before(startOfDay(now))
}
