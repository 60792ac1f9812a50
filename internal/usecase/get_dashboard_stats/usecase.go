package get_dashboard_stats

import (
	"context"
	"fmt"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

// UseCase derives summary counters over the booking set for the back
// office dashboard. Read-only; safe to call concurrently.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the dashboard stats usecase.
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute recomputes the stats over the full booking set.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	reference := req.ReferenceDate
	if reference.IsZero() {
		reference = uc.timeProvider.Now()
	}

	uc.logger.Info("GetDashboardStats: reference=%s", reference.Format(domain.DateFormat))

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		IncludeInactive: true,
	})
	if err != nil {
		uc.logger.Error("GetDashboardStats: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	stats := aggregate(bookings, reference)

	uc.logger.Info("GetDashboardStats: total=%d priority=%d week=%d topics=%d",
		stats.Total, stats.PriorityCount, stats.WeekCount, len(stats.ByTopic))

	return &Response{
		ReferenceDate: reference,
		Stats:         stats,
	}, nil
}
