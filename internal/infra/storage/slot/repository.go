package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/dbmetrics"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_recurring",
	"specific_date",
	"available",
	"created_at",
	"updated_at",
}

// Repository is the slot_records store.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a slot record repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new slot record.
func (r *Repository) Create(ctx context.Context, record *domain.SlotRecord) (*domain.SlotRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_records").
		Columns(
			"day_of_week",
			"start_time",
			"end_time",
			"is_recurring",
			"specific_date",
			"available",
		).
		Values(
			record.DayOfWeek,
			record.StartTime,
			record.EndTime,
			record.IsRecurring,
			record.SpecificDate,
			record.Available,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrStoreUnavailable, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return record, nil
}

// GetByID returns the slot record with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SlotRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slot_records").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	record, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot record: %v", ErrScanRow, err)
	}

	return record, nil
}

// ListForDate returns the candidate slot records for a calendar date: the
// recurring records matching its weekday plus the one-off records pinned to
// it. Ordered by start time ascending, ties broken by id so that resolution
// is deterministic. The administrative available flag is NOT applied here;
// filtering is the resolver's step.
func (r *Repository) ListForDate(ctx context.Context, date time.Time) ([]*domain.SlotRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slot_records").
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"is_recurring": true},
				squirrel.Eq{"day_of_week": int(date.Weekday())},
			},
			squirrel.And{
				squirrel.Eq{"is_recurring": false},
				squirrel.Eq{"specific_date": date},
			},
		}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// List returns all slot records for the back office, recurring first.
func (r *Repository) List(ctx context.Context) ([]*domain.SlotRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slot_records").
		OrderBy("is_recurring DESC", "day_of_week ASC", "specific_date ASC", "start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Update rewrites an existing slot record.
func (r *Repository) Update(ctx context.Context, record *domain.SlotRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_records").
		Set("day_of_week", record.DayOfWeek).
		Set("start_time", record.StartTime).
		Set("end_time", record.EndTime).
		Set("is_recurring", record.IsRecurring).
		Set("specific_date", record.SpecificDate).
		Set("available", record.Available).
		Where(squirrel.Eq{"id": record.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrStoreUnavailable, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete removes a slot record. Existing bookings are untouched: occupancy
// lives on the bookings, not on the slot definitions.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_records").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrStoreUnavailable, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrStoreUnavailable, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.SlotRecord, error) {
	var record domain.SlotRecord
	var specificDate sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&record.ID,
		&record.DayOfWeek,
		&record.StartTime,
		&record.EndTime,
		&record.IsRecurring,
		&specificDate,
		&record.Available,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if specificDate.Valid {
		d := specificDate.Time
		record.SpecificDate = &d
	}
	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	return &record, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.SlotRecord, error) {
	records := make([]*domain.SlotRecord, 0)

	for rows.Next() {
		record, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
