package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	created  *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 101
	booking.CreatedAt = time.Now()
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeSlotRepo struct {
	records []*domain.SlotRecord
}

func (f *fakeSlotRepo) ListForDate(_ context.Context, _ time.Time) ([]*domain.SlotRecord, error) {
	return f.records, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-10-17 is a Friday.
var (
	testNow  = time.Date(2025, 10, 17, 8, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(bookingRepo *fakeBookingRepo, slotRepo *fakeSlotRepo) *UseCase {
	uc := NewUseCase(bookingRepo, slotRepo, fakeTxManager{}, domain.DefaultExpediteHorizonDays, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Mariama Diallo",
		CustomerEmail: "mariama@example.com",
		CustomerPhone: "+224620000000",
		Date:          testDate,
		StartTime:     "09:00",
		EndTime:       "10:00",
		Topic:         "consultation juridique",
	}
}

func fridayWindow() []*domain.SlotRecord {
	return []*domain.SlotRecord{
		{ID: 1, IsRecurring: true, DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "10:30", Available: true},
	}
}

func TestExecute_AdmitsStandardBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := newTestUseCase(bookingRepo, &fakeSlotRepo{records: fridayWindow()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.IsPriority)
	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
}

func TestExecute_ExactWindowFitIsAdmitted(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{records: fridayWindow()})

	req := validRequest()
	req.StartTime = "09:00"
	req.EndTime = "10:30"

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_OverflowPastWindowEdgeIsRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{records: fridayWindow()})

	req := validRequest()
	req.StartTime = "09:00"
	req.EndTime = "10:31"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_StartBeforeWindowIsRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{records: fridayWindow()})

	req := validRequest()
	req.StartTime = "08:59"
	req.EndTime = "10:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_NoWindowsOnDate(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_ValidationFailures(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{records: fridayWindow()})

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing name", func(r *Request) { r.CustomerName = "" }, ErrInvalidInput},
		{"missing email", func(r *Request) { r.CustomerEmail = "" }, ErrInvalidInput},
		{"missing topic", func(r *Request) { r.Topic = "" }, ErrInvalidInput},
		{"inverted interval", func(r *Request) { r.StartTime, r.EndTime = "10:00", "09:00" }, ErrInvalidInput},
		{"empty interval", func(r *Request) { r.StartTime, r.EndTime = "09:00", "09:00" }, ErrInvalidInput},
		{"malformed time", func(r *Request) { r.StartTime = "9h00" }, ErrInvalidInput},
		{"zero date", func(r *Request) { r.Date = time.Time{} }, ErrInvalidDate},
		{"past date", func(r *Request) { r.Date = testDate.AddDate(0, 0, -1) }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_ConflictWithCompletedBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StartTime: "09:30", EndTime: "10:30", Status: domain.StatusCompleted},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeSlotRepo{records: fridayWindow()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDoubleBooking)
}

func TestExecute_PendingBookingDoesNotBlock(t *testing.T) {
	// Only completed bookings occupy intervals; two pending admissions for
	// the same window are both accepted and race at payment time.
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusPending},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeSlotRepo{records: fridayWindow()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_TouchingCompletedBookingIsAdmitted(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StartTime: "08:00", EndTime: "09:00", Status: domain.StatusCompleted},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeSlotRepo{records: fridayWindow()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_PriorityWithinHorizon(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	// No published windows at all: priority requests bypass them.
	uc := newTestUseCase(bookingRepo, &fakeSlotRepo{})

	req := validRequest()
	req.IsPriority = true
	req.Date = testDate.AddDate(0, 0, 2) // today + 2, last day inside the horizon

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPendingReview), resp.Status)
	assert.True(t, resp.IsPriority)
}

func TestExecute_PriorityBeyondHorizonIsRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{})

	req := validRequest()
	req.IsPriority = true
	req.Date = testDate.AddDate(0, 0, 3)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrOutOfHorizon)
}

func TestExecute_PriorityStillConflictChecked(t *testing.T) {
	bookingRepo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: domain.StatusCompleted},
		},
	}
	uc := newTestUseCase(bookingRepo, &fakeSlotRepo{})

	req := validRequest()
	req.IsPriority = true

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDoubleBooking)
}
