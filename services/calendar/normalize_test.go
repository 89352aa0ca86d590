package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

func TestNormalizeBusyRecordTimedEvent(t *testing.T) {
	iv, err := NormalizeBusyRecord(models.BusyEventRecord{
		Start:    "2025-11-25T09:00:00Z",
		End:      "2025-11-25T10:30:00Z",
		Label:    "Standup",
		SourceID: "ev-1",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 11, 25, 9, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2025, 11, 25, 10, 30, 0, 0, time.UTC), iv.End)
	assert.Equal(t, "Standup", iv.Label)
	assert.Equal(t, "ev-1", iv.SourceID)
}

func TestNormalizeBusyRecordAllDayEvent(t *testing.T) {
	t.Run("exclusive end date", func(t *testing.T) {
		iv, err := NormalizeBusyRecord(models.BusyEventRecord{Start: "2025-11-25", End: "2025-11-26"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC), iv.Start)
		assert.Equal(t, time.Date(2025, 11, 26, 0, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("end equal to start spans the day", func(t *testing.T) {
		iv, err := NormalizeBusyRecord(models.BusyEventRecord{Start: "2025-11-25", End: "2025-11-25"})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 11, 26, 0, 0, 0, 0, time.UTC), iv.End)
		assert.Equal(t, 24*60, iv.DurationMinutes())
	})

	t.Run("multi-day", func(t *testing.T) {
		iv, err := NormalizeBusyRecord(models.BusyEventRecord{Start: "2025-11-24", End: "2025-11-28"})
		require.NoError(t, err)
		assert.Equal(t, 4*24*60, iv.DurationMinutes())
	})
}

func TestNormalizeBusyRecordRejectsBadInput(t *testing.T) {
	t.Run("unparseable time", func(t *testing.T) {
		_, err := NormalizeBusyRecord(models.BusyEventRecord{Start: "next tuesday", End: "2025-11-26"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "next tuesday")
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NormalizeBusyRecord(models.BusyEventRecord{
			Start: "2025-11-25T10:00:00Z",
			End:   "2025-11-25T09:00:00Z",
		})
		var invalid *models.InvalidIntervalError
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestNormalizeBusyRecordsReportsFailingIndex(t *testing.T) {
	records := []models.BusyEventRecord{
		{Start: "2025-11-25T09:00:00Z", End: "2025-11-25T10:00:00Z"},
		{Start: "garbage", End: "2025-11-25T11:00:00Z"},
	}

	_, err := NormalizeBusyRecords(records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "busy event 1")
}

func TestNormalizeBusyRecordsEmptyInput(t *testing.T) {
	intervals, err := NormalizeBusyRecords(nil)
	require.NoError(t, err)
	assert.Empty(t, intervals)
}
