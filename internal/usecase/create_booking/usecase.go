package create_booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/ptr"
)

// UseCase admits booking requests. Standard requests must fit inside a
// published window; priority requests bypass published availability but
// must fall within the expedite horizon and await manual review. Either
// way the admitted booking starts unpaid and occupies nothing until
// payment confirmation.
type UseCase struct {
	bookingRepo  BookingRepository
	slotRepo     SlotRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	expediteHorizonDays int
}

// NewUseCase creates the admission usecase.
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	expediteHorizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:         bookingRepo,
		slotRepo:            slotRepo,
		txManager:           txManager,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
		expediteHorizonDays: expediteHorizonDays,
	}
}

// Execute runs the admission sequence. Validation steps run in order, each
// a rejection point; the availability and conflict checks plus the insert
// run inside one serializable transaction so that concurrent admissions
// cannot interleave between check and write.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, date=%s, interval=%s-%s, priority=%t",
		req.CustomerEmail, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.IsPriority)

	// (a) well-formed fields, startTime < endTime
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// (c) priority requests must fall within the expedite horizon; the
	// published-availability check is skipped for them, a reviewer will
	// assign the slot manually.
	if req.IsPriority {
		if err := validateHorizon(req.Date, now, uc.expediteHorizonDays); err != nil {
			uc.logger.Warn("CreateBooking: horizon check failed: %v", err)
			return nil, err
		}
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// (b) standard requests must fit fully inside one published window
		if !req.IsPriority {
			records, err := uc.slotRepo.ListForDate(txCtx, req.Date)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to list slot records: %v", err)
				return fmt.Errorf("%w: failed to list slot records: %v", ErrInternal, err)
			}

			windows := domain.ResolveOpenWindows(records, req.Date)
			if !containedInAnyWindow(windows, req.StartTime, req.EndTime) {
				uc.logger.Warn("CreateBooking: interval %s-%s not within any published window on %s",
					req.StartTime, req.EndTime, req.Date.Format(domain.DateFormat))
				return ErrSlotUnavailable
			}
		}

		// (d) no completed booking may already occupy an overlapping
		// interval; the read locks the day's rows (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			Date: ptr.Ptr(req.Date),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		if conflict := findConflict(bookings, req.StartTime, req.EndTime); conflict != nil {
			uc.logger.Warn("CreateBooking: conflict with completed booking id=%d", conflict.ID)
			return ErrDoubleBooking
		}

		// (e) admit as pending; priority requests go to manual review first
		status := domain.StatusPending
		if req.IsPriority {
			status = domain.StatusPendingReview
		}

		booking := &domain.Booking{
			Reference:     uuid.NewString(),
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Topic:         req.Topic,
			Status:        status,
			IsPriority:    req.IsPriority,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: admitted booking id=%d reference=%s status=%s",
		result.ID, result.Reference, result.Status)

	return &Response{
		ID:         result.ID,
		Reference:  result.Reference,
		Date:       result.Date,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Topic:      result.Topic,
		Status:     string(result.Status),
		IsPriority: result.IsPriority,
		CreatedAt:  result.CreatedAt,
	}, nil
}
