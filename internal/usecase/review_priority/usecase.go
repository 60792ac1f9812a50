package review_priority

import (
	"context"
	"errors"
	"fmt"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	bookingRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/booking"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/integrations/notifier"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/ptr"
)

// UseCase applies a manual review decision to a priority booking.
// Approval moves the booking to pending (awaiting payment), optionally on
// a reviewer-assigned window; denial is terminal and notified.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase creates the priority review usecase.
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute applies the decision.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReviewPriority: booking=%d decision=%s", req.BookingID, req.Decision)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReviewPriority: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("ReviewPriority: failed to get booking: %v", err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !b.AwaitsReview() {
			uc.logger.Warn("ReviewPriority: booking id=%d is in status=%s", b.ID, b.Status)
			return ErrNotPendingReview
		}

		if req.Decision == DecisionDeny {
			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusDenied); err != nil {
				uc.logger.Error("ReviewPriority: failed to deny booking: %v", err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			b.Status = domain.StatusDenied
			result = b
			return nil
		}

		// Approval: apply the reviewer-assigned window if present, then
		// check the target interval against completed bookings.
		applyAssignment(b, req)

		dayBookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			Date: ptr.Ptr(b.Date),
		})
		if err != nil {
			uc.logger.Error("ReviewPriority: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		for _, other := range dayBookings {
			if other.ID == b.ID {
				continue
			}
			if other.OccupiesInterval() && other.Overlaps(b.StartTime, b.EndTime) {
				uc.logger.Warn("ReviewPriority: assigned window collides with booking id=%d", other.ID)
				return ErrDoubleBooking
			}
		}

		b.Status = domain.StatusPending
		if err := uc.bookingRepo.Reschedule(txCtx, b.ID, b); err != nil {
			if errors.Is(err, bookingRepo.ErrIntervalTaken) {
				return ErrDoubleBooking
			}
			uc.logger.Error("ReviewPriority: failed to approve booking: %v", err)
			return fmt.Errorf("%w: failed to reschedule: %v", ErrInternal, err)
		}

		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Status == domain.StatusDenied {
		uc.logger.Info("ReviewPriority: booking id=%d denied", result.ID)
		uc.notifyDenied(ctx, result)
	} else {
		uc.logger.Info("ReviewPriority: booking id=%d approved, awaiting payment", result.ID)
	}

	return &Response{
		ID:        result.ID,
		Reference: result.Reference,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
	}, nil
}

func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Decision != DecisionApprove && req.Decision != DecisionDeny {
		return fmt.Errorf("%w: decision must be %q or %q", ErrInvalidInput, DecisionApprove, DecisionDeny)
	}

	// A window reassignment must be complete and positive
	if req.StartTime != nil || req.EndTime != nil {
		if req.StartTime == nil || req.EndTime == nil {
			return fmt.Errorf("%w: startTime and endTime must be assigned together", ErrInvalidInput)
		}
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
		if !req.StartTime.IsBefore(*req.EndTime) {
			return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
		}
	}

	return nil
}

func applyAssignment(b *domain.Booking, req *Request) {
	if req.Date != nil {
		b.Date = *req.Date
	}
	if req.StartTime != nil && req.EndTime != nil {
		b.StartTime = *req.StartTime
		b.EndTime = *req.EndTime
	}
}

func (uc *UseCase) notifyDenied(ctx context.Context, b *domain.Booking) {
	event := notifier.BookingEvent{
		Event:         notifier.EventBookingDenied,
		Reference:     b.Reference,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Topic:         b.Topic,
	}
	if err := uc.notifier.Notify(ctx, event); err != nil {
		uc.logger.Warn("ReviewPriority: notification failed for booking id=%d: %v", b.ID, err)
	}
}
