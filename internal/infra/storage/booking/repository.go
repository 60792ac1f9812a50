package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/dbmetrics"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/psqlbuilder"
)

// pgExclusionViolation is the class of errors raised by the
// bookings_no_completed_overlap constraint.
const pgExclusionViolation = "23P01"

var bookingColumns = []string{
	"id",
	"reference",
	"customer_name",
	"customer_email",
	"customer_phone",
	"booking_date",
	"start_time",
	"end_time",
	"topic",
	"status",
	"is_priority",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository is the bookings store.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking in its initial state.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"reference",
			"customer_name",
			"customer_email",
			"customer_phone",
			"booking_date",
			"start_time",
			"end_time",
			"topic",
			"status",
			"is_priority",
		).
		Values(
			b.Reference,
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.Topic,
			b.Status,
			b.IsPriority,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrIntervalTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrStoreUnavailable, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID returns the booking with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByReference returns the booking with the given public reference.
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"reference": reference}, "GetByReference")
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(pred)

	// Inside a transaction the row is locked so that a concurrent
	// confirmation cannot read the same pre-completed state.
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return b, nil
}

// GetWithFilter returns bookings matching the filter.
//
// Inside a transaction with a single-date filter the result set is locked
// FOR UPDATE: this is the conflict-check read of the admission and
// confirmation paths.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"booking_date": *filter.Date})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}
	if filter.OnlyPriority {
		builder = builder.Where(squirrel.Eq{"is_priority": true})
	}

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		builder = builder.Where(squirrel.NotEq{"status": inactive})
	}

	if filter.Date != nil {
		builder = builder.OrderBy("start_time ASC", "id ASC")
	} else {
		builder = builder.OrderBy("booking_date DESC", "start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus moves a booking to a new status. A transition to completed
// is additionally guarded by the exclusion constraint on overlapping
// completed intervals; a violation is reported as ErrIntervalTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrIntervalTaken
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrStoreUnavailable, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Reschedule moves a booking to a new window. Used when a priority request
// is approved against a manually assigned slot.
func (r *Repository) Reschedule(ctx context.Context, id int64, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("booking_date", b.Date).
		Set("start_time", b.StartTime).
		Set("end_time", b.EndTime).
		Set("status", b.Status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrIntervalTaken
		}
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Reschedule - get rows affected: %v", ErrStoreUnavailable, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel marks a booking cancelled with the cancellation timestamp.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrStoreUnavailable, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgExclusionViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var cancelledAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Reference,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.Topic,
		&b.Status,
		&b.IsPriority,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		t := cancelledAt.Time
		b.CancelledAt = &t
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
