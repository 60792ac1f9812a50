package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	bookingRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/booking"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/integrations/notifier"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/ptr"
)

// UseCase reacts to the payment collaborator's signal. Confirmation is the
// step that permanently occupies the booking's interval, so the conflict
// check runs again here inside a serializable transaction: of two pending
// bookings for the same interval, the first to confirm wins and the second
// is rejected, never silently overwritten.
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase creates the payment confirmation usecase.
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

// Execute applies one payment outcome to the referenced booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: reference=%s outcome=%s", req.Reference, req.Outcome)

	if req.Reference == "" {
		return nil, fmt.Errorf("%w: reference is required", ErrInvalidInput)
	}
	if req.Outcome != OutcomeCompleted && req.Outcome != OutcomeFailed {
		return nil, fmt.Errorf("%w: outcome must be %q or %q", ErrInvalidInput, OutcomeCompleted, OutcomeFailed)
	}

	var (
		result   *domain.Booking
		conflict bool
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// The read locks the row (FOR UPDATE) so two concurrent signals
		// for the same booking serialize here.
		b, err := uc.bookingRepo.GetByReference(txCtx, req.Reference)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmPayment: failed to get booking: %v", err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !b.AwaitsPayment() {
			uc.logger.Warn("ConfirmPayment: booking id=%d is in status=%s", b.ID, b.Status)
			return ErrNotAwaitingPayment
		}

		if req.Outcome == OutcomeFailed {
			if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusFailed); err != nil {
				uc.logger.Error("ConfirmPayment: failed to mark booking failed: %v", err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			b.Status = domain.StatusFailed
			result = b
			return nil
		}

		// Re-run the conflict check at confirmation time: both racers may
		// have passed admission while the interval was still free.
		dayBookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			Date: ptr.Ptr(b.Date),
		})
		if err != nil {
			uc.logger.Error("ConfirmPayment: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		for _, other := range dayBookings {
			if other.ID == b.ID {
				continue
			}
			if other.OccupiesInterval() && other.Overlaps(b.StartTime, b.EndTime) {
				uc.logger.Warn("ConfirmPayment: booking id=%d lost the interval to booking id=%d", b.ID, other.ID)
				// The loser is marked failed inside this transaction and
				// the conflict is reported after commit.
				if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusFailed); err != nil {
					uc.logger.Error("ConfirmPayment: failed to mark loser failed: %v", err)
					return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
				}
				conflict = true
				b.Status = domain.StatusFailed
				result = b
				return nil
			}
		}

		// The exclusion constraint on completed intervals is the final
		// guard if a concurrent confirmation slipped past the read.
		if err := uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusCompleted); err != nil {
			if errors.Is(err, bookingRepo.ErrIntervalTaken) {
				uc.logger.Warn("ConfirmPayment: exclusion constraint rejected booking id=%d", b.ID)
				return bookingRepo.ErrIntervalTaken
			}
			uc.logger.Error("ConfirmPayment: failed to complete booking: %v", err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		b.Status = domain.StatusCompleted
		result = b
		return nil
	})

	if err != nil {
		// The constraint fired inside the transaction, so the completed
		// write rolled back; record the failure in its own transaction
		// and surface the race to the caller.
		if errors.Is(err, bookingRepo.ErrIntervalTaken) {
			return nil, uc.failAfterLostRace(ctx, req.Reference)
		}
		return nil, err
	}

	if conflict {
		return nil, ErrDoubleBooking
	}

	if result.Status == domain.StatusCompleted {
		uc.logger.Info("ConfirmPayment: booking id=%d confirmed", result.ID)
		uc.notifyConfirmed(ctx, result)
	} else {
		uc.logger.Info("ConfirmPayment: booking id=%d marked failed", result.ID)
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

// failAfterLostRace marks the booking failed outside the aborted
// transaction and reports the double booking.
func (uc *UseCase) failAfterLostRace(ctx context.Context, reference string) error {
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetByReference(txCtx, reference)
		if err != nil {
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		return uc.bookingRepo.UpdateStatus(txCtx, b.ID, domain.StatusFailed)
	})
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to mark booking failed after lost race: %v", err)
	}
	return ErrDoubleBooking
}

// notifyConfirmed informs the notification collaborator. Fire-and-forget:
// a delivery failure never rolls back the confirmed state.
func (uc *UseCase) notifyConfirmed(ctx context.Context, b *domain.Booking) {
	event := notifier.BookingEvent{
		Event:         notifier.EventBookingConfirmed,
		Reference:     b.Reference,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Date:          b.Date.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		Topic:         b.Topic,
	}
	if err := uc.notifier.Notify(ctx, event); err != nil {
		uc.logger.Warn("ConfirmPayment: notification failed for booking id=%d: %v", b.ID, err)
	}
}
