package get_day_schedule

import (
	"context"
	"fmt"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/ptr"
)

// UseCase computes the derived schedule for one date: the open windows
// resolved from the slot records, each annotated with whether a completed
// booking already occupies it. The schedule is never persisted; it is
// recomputed on every call so that slot record edits take effect
// immediately.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase creates the day schedule usecase.
func NewUseCase(slotRepo SlotRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute resolves the schedule for the requested date. Pure read, no side
// effects.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySchedule: missing date")
		return nil, ErrInvalidDate
	}

	uc.logger.Info("GetDaySchedule: date=%s", req.Date.Format(domain.DateFormat))

	records, err := uc.slotRepo.ListForDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list slot records: %v", err)
		return nil, fmt.Errorf("%w: failed to list slot records: %v", ErrInternal, err)
	}

	windows := domain.ResolveOpenWindows(records, req.Date)

	// No candidates means no availability, an empty schedule rather than
	// an error.
	if len(windows) == 0 {
		return &Response{Date: req.Date, Windows: []Window{}}, nil
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		Date:   ptr.Ptr(req.Date),
		Status: ptr.Ptr(domain.StatusCompleted),
	})
	if err != nil {
		uc.logger.Error("GetDaySchedule: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	annotated := annotateOccupancy(windows, bookings)

	uc.logger.Info("GetDaySchedule: resolved %d windows for date=%s",
		len(annotated), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Windows: annotated}, nil
}

// annotateOccupancy marks each window booked when a completed booking
// overlaps it. Administrative availability and occupancy stay separate
// axes: a window present here is open by definition, booked or not.
func annotateOccupancy(windows []domain.TimeWindow, bookings []*domain.Booking) []Window {
	result := make([]Window, len(windows))

	for i, w := range windows {
		booked := false
		for _, b := range bookings {
			if b.OccupiesInterval() && b.Overlaps(w.StartTime, w.EndTime) {
				booked = true
				break
			}
		}
		result[i] = Window{
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			Booked:    booked,
		}
	}

	return result
}
