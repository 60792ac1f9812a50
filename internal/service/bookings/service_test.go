package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	bookingRepo "github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	byID      map[int64]*domain.Booking
	cancelled []int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[int64]*domain.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByReference(_ context.Context, reference string) (*domain.Booking, error) {
	for _, b := range f.byID {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.byID))
	for _, b := range f.byID {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func storedBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		Reference: "ref-1",
		Date:      time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		Topic:     "consultation juridique",
		Status:    status,
	}
}

func TestCancel_PendingStatesAreCancellable(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusPendingReview} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeBookingRepo()
			repo.byID[1] = storedBooking(1, status)

			svc := NewService(repo, nopLogger{})

			require.NoError(t, svc.Cancel(context.Background(), 1))
			assert.Equal(t, []int64{1}, repo.cancelled)
		})
	}
}

func TestCancel_TerminalStatesAreNot(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusCompleted,
		domain.StatusFailed,
		domain.StatusDenied,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeBookingRepo()
			repo.byID[1] = storedBooking(1, status)

			svc := NewService(repo, nopLogger{})

			err := svc.Cancel(context.Background(), 1)
			assert.ErrorIs(t, err, ErrCannotCancel)
			assert.Empty(t, repo.cancelled)
		})
	}
}

func TestCancel_UnknownBooking(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), nopLogger{})

	err := svc.Cancel(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByReference(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.byID[1] = storedBooking(1, domain.StatusPending)

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByReference(context.Background(), "ref-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "09:00", resp.StartTime)

	_, err = svc.GetByReference(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
