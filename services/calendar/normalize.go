package calendar

import (
	"fmt"
	"time"

	"slotwise/models"
)

const allDayLayout = "2006-01-02"

// NormalizeBusyRecords converts raw calendar busy records into TimeIntervals.
// Each record carries either an RFC 3339 timestamp or a date-only value:
// all-day events normalize to midnight-to-midnight, with a date-only end
// treated as an exclusive date (Google Calendar convention). A record whose
// end does not land after its start yields an InvalidIntervalError.
func NormalizeBusyRecords(records []models.BusyEventRecord) ([]models.TimeInterval, error) {
	intervals := make([]models.TimeInterval, 0, len(records))
	for i, rec := range records {
		iv, err := NormalizeBusyRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("busy event %d: %w", i, err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

// NormalizeBusyRecord converts a single busy record.
func NormalizeBusyRecord(rec models.BusyEventRecord) (models.TimeInterval, error) {
	start, _, err := parseEventTime(rec.Start)
	if err != nil {
		return models.TimeInterval{}, err
	}
	end, endAllDay, err := parseEventTime(rec.End)
	if err != nil {
		return models.TimeInterval{}, err
	}
	// A single-date all-day event may report end == start; it still spans the
	// whole day.
	if endAllDay && end.Equal(start) {
		end = end.AddDate(0, 0, 1)
	}
	return models.NewInterval(start, end, rec.Label, rec.SourceID)
}

// parseEventTime accepts RFC 3339 timestamps and date-only values. Date-only
// values resolve to midnight UTC and are flagged as all-day.
func parseEventTime(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	if d, err := time.Parse(allDayLayout, value); err == nil {
		return d, true, nil
	}
	return time.Time{}, false, fmt.Errorf("unrecognized event time %q (want RFC 3339 or %s)", value, allDayLayout)
}
