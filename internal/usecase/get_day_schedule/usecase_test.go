package get_day_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

type fakeSlotRepo struct {
	records []*domain.SlotRecord
}

func (f *fakeSlotRepo) ListForDate(_ context.Context, _ time.Time) ([]*domain.SlotRecord, error) {
	return f.records, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	called   bool
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	f.called = true
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-17 is a Friday.
var friday = time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)

func TestExecute_AnnotatesOccupancy(t *testing.T) {
	slotRepo := &fakeSlotRepo{records: []*domain.SlotRecord{
		{ID: 1, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "10:00", Available: true},
		{ID: 2, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "14:00", EndTime: "15:00", Available: true},
	}}
	bookingRepo := &fakeBookingRepo{bookings: []*domain.Booking{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCompleted},
	}}

	uc := NewUseCase(slotRepo, bookingRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	require.Len(t, resp.Windows, 2)
	assert.True(t, resp.Windows[0].Booked)
	assert.False(t, resp.Windows[1].Booked)
}

func TestExecute_EmptyScheduleIsNotAnError(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(&fakeSlotRepo{}, bookingRepo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)

	assert.NotNil(t, resp.Windows)
	assert.Empty(t, resp.Windows)
	assert.False(t, bookingRepo.called, "no booking lookup when there are no windows")
}

func TestExecute_DisabledRecordsProduceNoWindows(t *testing.T) {
	slotRepo := &fakeSlotRepo{records: []*domain.SlotRecord{
		{ID: 1, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "10:00", Available: false},
	}}
	uc := NewUseCase(slotRepo, &fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: friday})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, &fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
