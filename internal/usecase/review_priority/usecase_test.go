package review_priority

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	bookingRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/booking"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/integrations/notifier"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/ptr"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

type fakeBookingRepo struct {
	byID        map[int64]*domain.Booking
	dayBookings []*domain.Booking

	statusUpdates map[int64]domain.BookingStatus
	rescheduled   *domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		byID:          make(map[int64]*domain.Booking),
		statusUpdates: make(map[int64]domain.BookingStatus),
	}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
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
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, _ int64, booking *domain.Booking) error {
	copied := *booking
	f.rescheduled = &copied
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

func reviewableBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Reference:     "ref-42",
		CustomerName:  "Mariama Diallo",
		CustomerEmail: "mariama@example.com",
		Date:          time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
		StartTime:     "09:00",
		EndTime:       "10:00",
		Topic:         "consultation fiscale",
		Status:        domain.StatusPendingReview,
		IsPriority:    true,
	}
}

func TestExecute_ApproveKeepsRequestedWindow(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[42] = reviewableBooking(42)
	notif := &recordingNotifier{}

	uc := NewUseCase(repo, fakeTxManager{}, notif, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: DecisionApprove})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	require.NotNil(t, repo.rescheduled)
	assert.Equal(t, domain.StatusPending, repo.rescheduled.Status)
	assert.Empty(t, notif.events, "approval must not notify")
}

func TestExecute_ApproveWithAssignedWindow(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[42] = reviewableBooking(42)

	uc := NewUseCase(repo, fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	newDate := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 42,
		Decision:  DecisionApprove,
		Date:      ptr.Ptr(newDate),
		StartTime: ptr.Ptr(types.TimeString("14:00")),
		EndTime:   ptr.Ptr(types.TimeString("15:00")),
	})
	require.NoError(t, err)

	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("15:00"), resp.EndTime)
}

func TestExecute_ApproveCollidingWindowRejected(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[42] = reviewableBooking(42)
	repo.dayBookings = []*domain.Booking{
		{ID: 7, StartTime: "09:30", EndTime: "10:30", Status: domain.StatusCompleted},
	}

	uc := NewUseCase(repo, fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: DecisionApprove})
	assert.ErrorIs(t, err, ErrDoubleBooking)
	assert.Nil(t, repo.rescheduled)
}

func TestExecute_DenyIsTerminalAndNotified(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[42] = reviewableBooking(42)
	notif := &recordingNotifier{}

	uc := NewUseCase(repo, fakeTxManager{}, notif, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: DecisionDeny})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusDenied), resp.Status)
	assert.Equal(t, domain.StatusDenied, repo.statusUpdates[42])

	require.Len(t, notif.events, 1)
	assert.Equal(t, notifier.EventBookingDenied, notif.events[0].Event)
}

func TestExecute_OnlyPendingReviewIsReviewable(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusCompleted,
		domain.StatusFailed,
		domain.StatusDenied,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeBookingRepo()
			b := reviewableBooking(42)
			b.Status = status
			repo.byID[42] = b

			uc := NewUseCase(repo, fakeTxManager{}, &recordingNotifier{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{BookingID: 42, Decision: DecisionApprove})
			assert.ErrorIs(t, err, ErrNotPendingReview)
		})
	}
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero booking id", &Request{BookingID: 0, Decision: DecisionApprove}},
		{"unknown decision", &Request{BookingID: 42, Decision: "maybe"}},
		{"half-assigned window", &Request{
			BookingID: 42, Decision: DecisionApprove,
			StartTime: ptr.Ptr(types.TimeString("14:00")),
		}},
		{"inverted assigned window", &Request{
			BookingID: 42, Decision: DecisionApprove,
			StartTime: ptr.Ptr(types.TimeString("15:00")),
			EndTime:   ptr.Ptr(types.TimeString("14:00")),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UnknownBooking(t *testing.T) {
	uc := NewUseCase(newFakeBookingRepo(), fakeTxManager{}, &recordingNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99, Decision: DecisionDeny})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
