package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feugeney/crenaux-guinee-rendezvous-facile-sub002/pkg/ptr"
)

func TestToDomainSlotRecord_Recurring(t *testing.T) {
	req := &SlotRecordRequest{
		DayOfWeek: ptr.Ptr(int(time.Friday)),
		StartTime: "09:00",
		EndTime:   "10:30",
		Available: true,
	}

	record, err := req.ToDomainSlotRecord()
	require.NoError(t, err)

	assert.True(t, record.IsRecurring)
	assert.Equal(t, int(time.Friday), record.DayOfWeek)
	assert.Nil(t, record.SpecificDate)
	assert.True(t, record.Available)
}

func TestToDomainSlotRecord_OneOff(t *testing.T) {
	req := &SlotRecordRequest{
		StartTime:    "11:00",
		EndTime:      "12:00",
		SpecificDate: ptr.Ptr("2025-10-18"),
		Available:    true,
	}

	record, err := req.ToDomainSlotRecord()
	require.NoError(t, err)

	assert.False(t, record.IsRecurring)
	require.NotNil(t, record.SpecificDate)
	assert.Equal(t, time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), *record.SpecificDate)
}

func TestToDomainSlotRecord_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     *SlotRecordRequest
		wantErr error
	}{
		{
			"both axes set",
			&SlotRecordRequest{DayOfWeek: ptr.Ptr(5), SpecificDate: ptr.Ptr("2025-10-18"), StartTime: "09:00", EndTime: "10:00"},
			ErrAmbiguousRecurrence,
		},
		{
			"neither axis set",
			&SlotRecordRequest{StartTime: "09:00", EndTime: "10:00"},
			ErrAmbiguousRecurrence,
		},
		{
			"day of week too large",
			&SlotRecordRequest{DayOfWeek: ptr.Ptr(7), StartTime: "09:00", EndTime: "10:00"},
			ErrInvalidDayOfWeek,
		},
		{
			"negative day of week",
			&SlotRecordRequest{DayOfWeek: ptr.Ptr(-1), StartTime: "09:00", EndTime: "10:00"},
			ErrInvalidDayOfWeek,
		},
		{
			"inverted window",
			&SlotRecordRequest{DayOfWeek: ptr.Ptr(5), StartTime: "10:00", EndTime: "09:00"},
			ErrInvalidTime,
		},
		{
			"empty window",
			&SlotRecordRequest{DayOfWeek: ptr.Ptr(5), StartTime: "09:00", EndTime: "09:00"},
			ErrInvalidTime,
		},
		{
			"malformed time",
			&SlotRecordRequest{DayOfWeek: ptr.Ptr(5), StartTime: "9am", EndTime: "10:00"},
			ErrInvalidTime,
		},
		{
			"malformed date",
			&SlotRecordRequest{SpecificDate: ptr.Ptr("18/10/2025"), StartTime: "09:00", EndTime: "10:00"},
			ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToDomainSlotRecord()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
