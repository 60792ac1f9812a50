package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/internal/domain"
	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/types"
)

var (
	// ErrInvalidTime is returned for an unparsable or out-of-order time window
	ErrInvalidTime = errors.New("invalid time window")

	// ErrInvalidDate is returned for an unparsable specific date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidDayOfWeek is returned for a day outside 0-6
	ErrInvalidDayOfWeek = errors.New("invalid day of week")

	// ErrAmbiguousRecurrence is returned when the record does not pick
	// exactly one of the weekly or one-off axes
	ErrAmbiguousRecurrence = errors.New("record must be either recurring or pinned to a date")
)

// SlotRecordRequest carries the admin-supplied slot definition. A weekly
// record sets DayOfWeek and leaves SpecificDate nil; a one-off record does
// the opposite.
type SlotRecordRequest struct {
	DayOfWeek    *int
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	SpecificDate *string // YYYY-MM-DD
	Available    bool
}

// ToDomainSlotRecord validates the request and builds the domain record.
func (r *SlotRecordRequest) ToDomainSlotRecord() (*domain.SlotRecord, error) {
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time %q", ErrInvalidTime, r.StartTime)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end time %q", ErrInvalidTime, r.EndTime)
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidTime)
	}

	// Exactly one axis: weekly recurrence or a pinned date.
	if (r.DayOfWeek == nil) == (r.SpecificDate == nil) {
		return nil, ErrAmbiguousRecurrence
	}

	record := &domain.SlotRecord{
		StartTime: start,
		EndTime:   end,
		Available: r.Available,
	}

	if r.DayOfWeek != nil {
		if *r.DayOfWeek < domain.MinDayOfWeek || *r.DayOfWeek > domain.MaxDayOfWeek {
			return nil, ErrInvalidDayOfWeek
		}
		record.IsRecurring = true
		record.DayOfWeek = *r.DayOfWeek
	} else {
		d, err := time.Parse(domain.DateFormat, *r.SpecificDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *r.SpecificDate)
		}
		record.SpecificDate = &d
	}

	return record, nil
}

// SlotRecordResponse is the service-level view of a slot record.
type SlotRecordResponse struct {
	ID           int64
	DayOfWeek    *int
	StartTime    string
	EndTime      string
	IsRecurring  bool
	SpecificDate *string
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SlotRecordListResponse is a list of slot records.
type SlotRecordListResponse struct {
	Records []SlotRecordResponse
	Total   int
}

// FromDomainSlotRecord converts a domain slot record.
func FromDomainSlotRecord(s *domain.SlotRecord) *SlotRecordResponse {
	resp := &SlotRecordResponse{
		ID:          s.ID,
		StartTime:   s.StartTime.String(),
		EndTime:     s.EndTime.String(),
		IsRecurring: s.IsRecurring,
		Available:   s.Available,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.IsRecurring {
		day := s.DayOfWeek
		resp.DayOfWeek = &day
	}
	if s.SpecificDate != nil {
		date := s.SpecificDate.Format(domain.DateFormat)
		resp.SpecificDate = &date
	}
	return resp
}

// FromDomainSlotRecordList converts a list of domain slot records.
func FromDomainSlotRecordList(records []*domain.SlotRecord) *SlotRecordListResponse {
	result := &SlotRecordListResponse{
		Records: make([]SlotRecordResponse, len(records)),
		Total:   len(records),
	}
	for i, s := range records {
		result.Records[i] = *FromDomainSlotRecord(s)
	}
	return result
}
