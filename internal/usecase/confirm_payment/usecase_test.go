package confirm_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	bookingRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/booking"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/integrations/notifier"
)

type fakeBookingRepo struct {
	byReference map[string]*domain.Booking
	dayBookings []*domain.Booking

	statusUpdates map[int64][]domain.BookingStatus
	updateErr     error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byReference:   make(map[string]*domain.Booking),
		statusUpdates: make(map[int64][]domain.BookingStatus),
	}
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	b, ok := f.byReference[reference]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.statusUpdates[id] = append(f.statusUpdates[id], status)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	events []notifier.BookingEvent
}

func (r *recordingNotifier) Notify(_ context.Context, event notifier.BookingEvent) error {
	r.events = append(r.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking(id int64, reference string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Reference:     reference,
		CustomerName:  "Mariama Diallo",
		CustomerEmail: "mariama@example.com",
		Date:          time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		EndTime:       "10:00",
		Topic:         "consultation juridique",
		Status:        domain.StatusPending,
	}
}

func TestExecute_CompletedOutcomeConfirmsBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	b := pendingBooking(1, "ref-1")
	repo.byReference["ref-1"] = b
	repo.dayBookings = []*domain.Booking{b}
	notif := &recordingNotifier{}

	uc := NewUseCase(repo, fakeTxManager{}, notif, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Reference: "ref-1", Outcome: OutcomeCompleted})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, []domain.BookingStatus{domain.StatusCompleted}, repo.statusUpdates[1])

	require.Len(t, notif.events, 1)
	assert.Equal(t, notifier.EventBookingConfirmed, notif.events[0].Event)
	assert.Equal(t, "ref-1", notif.events[0].Reference)
}

func TestExecute_FailedOutcomeMarksFailed(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byReference["ref-1"] = pendingBooking(1, "ref-1")
	notif := &recordingNotifier{}

	uc := NewUseCase(repo, fakeTxManager{}, notif, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Reference: "ref-1", Outcome: OutcomeFailed})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusFailed), resp.Status)
	assert.Equal(t, []domain.BookingStatus{domain.StatusFailed}, repo.statusUpdates[1])
	assert.Empty(t, notif.events, "failed outcome must not notify")
}

func TestExecute_SecondConfirmationLosesRace(t *testing.T) {
	// Two pending bookings were admitted for the same interval; the first
	// already confirmed. The second confirmation must fail the booking
	// instead of overwriting the winner.
	repo := newFakeBookingRepo()
	loser := pendingBooking(2, "ref-2")
	winner := pendingBooking(1, "ref-1")
	winner.Status = domain.StatusCompleted

	repo.byReference["ref-2"] = loser
	repo.dayBookings = []*domain.Booking{winner, loser}

	uc := NewUseCase(repo, fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Reference: "ref-2", Outcome: OutcomeCompleted})
	assert.ErrorIs(t, err, ErrDoubleBooking)
	assert.Equal(t, []domain.BookingStatus{domain.StatusFailed}, repo.statusUpdates[2])
}

func TestExecute_ExclusionConstraintLossMarksFailed(t *testing.T) {
	// The read missed the winner but the storage constraint fired: the
	// booking is marked failed in a follow-up transaction.
	repo := newFakeBookingRepo()
	repo.byReference["ref-2"] = pendingBooking(2, "ref-2")
	repo.updateErr = bookingRepo.ErrIntervalTaken

	uc := NewUseCase(repo, fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Reference: "ref-2", Outcome: OutcomeCompleted})
	assert.ErrorIs(t, err, ErrDoubleBooking)
}

func TestExecute_RejectsNonPendingStates(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPendingReview,
		domain.StatusCompleted,
		domain.StatusFailed,
		domain.StatusDenied,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeBookingRepo()
			b := pendingBooking(1, "ref-1")
			b.Status = status
			repo.byReference["ref-1"] = b

			uc := NewUseCase(repo, fakeTxManager{}, &recordingNotifier{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{Reference: "ref-1", Outcome: OutcomeCompleted})
			assert.ErrorIs(t, err, ErrNotAwaitingPayment)
			assert.Empty(t, repo.statusUpdates[1])
		})
	}
}

func TestExecute_UnknownReference(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Reference: "missing", Outcome: OutcomeCompleted})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Reference: "", Outcome: OutcomeCompleted})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Reference: "ref-1", Outcome: "refunded"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
