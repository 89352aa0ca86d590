package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotwise/models"
)

// 2025-11-25 is a Tuesday.
var tuesday = time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)

func at(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

func busyBlock(day time.Time, sh, sm, eh, em int, label string) models.TimeInterval {
	return models.TimeInterval{Start: at(day, sh, sm), End: at(day, eh, em), Label: label}
}

func TestBuildAvailabilityBusyWorkday(t *testing.T) {
	busy := []models.TimeInterval{
		busyBlock(tuesday, 9, 0, 10, 30, "Standup"),
		busyBlock(tuesday, 11, 0, 12, 0, "1:1"),
		busyBlock(tuesday, 14, 0, 15, 30, "Review"),
	}
	prefs := models.SchedulePreferences{
		AvoidCategories: []string{models.CategoryMorning},
		WorkHoursOnly:   true,
		EarliestHour:    9,
		LatestHour:      17,
	}

	slots, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 18, 0), 120, prefs)
	require.NoError(t, err)

	// The 08:00 and 10:30 gaps start in the morning, and the trailing gap
	// only has 90 minutes left before 17:00. One slot survives.
	require.Len(t, slots, 1)
	assert.Equal(t, at(tuesday, 12, 0), slots[0].Interval.Start)
	assert.Equal(t, at(tuesday, 14, 0), slots[0].Interval.End)
	assert.Equal(t, ReasonAvailable, slots[0].Reason)
}

func TestBuildAvailabilityEmptyCalendar(t *testing.T) {
	slots, err := BuildAvailability(nil, at(tuesday, 8, 0), at(tuesday, 18, 0), 30, models.SchedulePreferences{})
	require.NoError(t, err)

	require.Len(t, slots, 1)
	assert.Equal(t, at(tuesday, 8, 0), slots[0].Interval.Start)
	assert.Equal(t, at(tuesday, 18, 0), slots[0].Interval.End)
	assert.Equal(t, ReasonAvailable, slots[0].Reason)
}

func TestBuildAvailabilityFullyBookedIsNotAnError(t *testing.T) {
	busy := []models.TimeInterval{busyBlock(tuesday, 8, 0, 18, 0, "Offsite")}

	slots, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 18, 0), 30, models.SchedulePreferences{})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestBuildAvailabilityInvalidInputs(t *testing.T) {
	t.Run("window end not after start", func(t *testing.T) {
		_, err := BuildAvailability(nil, at(tuesday, 18, 0), at(tuesday, 8, 0), 30, models.SchedulePreferences{})
		var invalid *InvalidWindowError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, at(tuesday, 18, 0), invalid.WindowStart)
	})

	t.Run("zero duration", func(t *testing.T) {
		_, err := BuildAvailability(nil, at(tuesday, 8, 0), at(tuesday, 18, 0), 0, models.SchedulePreferences{})
		var invalid *InvalidDurationError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 0, invalid.Minutes)
	})
}

func TestBuildAvailabilityUnsortedAndOverlappingBusy(t *testing.T) {
	// Supplied out of order, with one interval fully contained in another.
	busy := []models.TimeInterval{
		busyBlock(tuesday, 10, 0, 11, 0, "contained"),
		busyBlock(tuesday, 9, 0, 12, 0, "outer"),
		busyBlock(tuesday, 11, 30, 13, 0, "overlapping tail"),
	}
	original := make([]models.TimeInterval, len(busy))
	copy(original, busy)

	slots, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 15, 0), 30, models.SchedulePreferences{})
	require.NoError(t, err)

	require.Len(t, slots, 2)
	assert.Equal(t, at(tuesday, 8, 0), slots[0].Interval.Start)
	assert.Equal(t, at(tuesday, 9, 0), slots[0].Interval.End)
	assert.Equal(t, at(tuesday, 13, 0), slots[1].Interval.Start)
	assert.Equal(t, at(tuesday, 15, 0), slots[1].Interval.End)

	// The caller's slice keeps its order.
	assert.Equal(t, original, busy)
}

func TestBuildAvailabilityBusyOutsideWindowIgnored(t *testing.T) {
	busy := []models.TimeInterval{
		busyBlock(tuesday, 5, 0, 6, 0, "early"),
		busyBlock(tuesday, 20, 0, 21, 0, "late"),
	}

	slots, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 18, 0), 30, models.SchedulePreferences{})
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, at(tuesday, 8, 0), slots[0].Interval.Start)
	assert.Equal(t, at(tuesday, 18, 0), slots[0].Interval.End)
}

func TestBuildAvailabilityGapConservation(t *testing.T) {
	busy := []models.TimeInterval{
		busyBlock(tuesday, 9, 0, 10, 0, ""),
		busyBlock(tuesday, 12, 0, 13, 30, ""),
	}
	windowStart, windowEnd := at(tuesday, 8, 0), at(tuesday, 18, 0)

	slots, err := BuildAvailability(busy, windowStart, windowEnd, 1, models.SchedulePreferences{})
	require.NoError(t, err)

	var free time.Duration
	for _, s := range slots {
		free += s.Interval.End.Sub(s.Interval.Start)
	}
	var occupied time.Duration
	for _, b := range busy {
		occupied += b.End.Sub(b.Start)
	}
	assert.Equal(t, windowEnd.Sub(windowStart), free+occupied)
}

func TestBuildAvailabilityAvoidRules(t *testing.T) {
	// 2025-11-29 is a Saturday.
	saturday := time.Date(2025, 11, 29, 0, 0, 0, 0, time.UTC)

	t.Run("avoid weekend empties a Saturday", func(t *testing.T) {
		prefs := models.SchedulePreferences{AvoidCategories: []string{models.CategoryWeekend}}
		slots, err := BuildAvailability(nil, at(saturday, 8, 0), at(saturday, 18, 0), 30, prefs)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("avoid evening keys off the gap start only", func(t *testing.T) {
		prefs := models.SchedulePreferences{AvoidCategories: []string{models.CategoryEvening}}
		slots, err := BuildAvailability(nil, at(tuesday, 16, 0), at(tuesday, 20, 0), 30, prefs)
		require.NoError(t, err)
		// Starts at 16:00, so the whole gap is kept even though it runs
		// past 17:00.
		require.Len(t, slots, 1)
		assert.Equal(t, at(tuesday, 20, 0), slots[0].Interval.End)
	})

	t.Run("unknown tags are ignored", func(t *testing.T) {
		prefs := models.SchedulePreferences{AvoidCategories: []string{"lunch", "focus-time"}}
		slots, err := BuildAvailability(nil, at(tuesday, 8, 0), at(tuesday, 18, 0), 30, prefs)
		require.NoError(t, err)
		assert.Len(t, slots, 1)
	})

	t.Run("adding an avoid rule never adds slots", func(t *testing.T) {
		busy := []models.TimeInterval{busyBlock(tuesday, 10, 0, 13, 0, "")}
		open, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 18, 0), 60, models.SchedulePreferences{})
		require.NoError(t, err)
		restricted, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 18, 0), 60,
			models.SchedulePreferences{AvoidCategories: []string{models.CategoryMorning}})
		require.NoError(t, err)

		assert.Less(t, len(restricted), len(open))
		for _, r := range restricted {
			assert.Contains(t, open, r)
		}
	})
}

func TestBuildAvailabilityWorkHoursClipTrailingGap(t *testing.T) {
	prefs := models.SchedulePreferences{WorkHoursOnly: true, EarliestHour: 9, LatestHour: 17}

	slots, err := BuildAvailability(nil, at(tuesday, 10, 0), at(tuesday, 20, 0), 30, prefs)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, at(tuesday, 10, 0), slots[0].Interval.Start)
	assert.Equal(t, at(tuesday, 17, 0), slots[0].Interval.End)
}

func TestBuildAvailabilityPreferredCategoriesTagOnly(t *testing.T) {
	busy := []models.TimeInterval{busyBlock(tuesday, 12, 0, 13, 0, "")}
	prefs := models.SchedulePreferences{PreferredCategories: []string{models.CategoryAfternoon}}

	slots, err := BuildAvailability(busy, at(tuesday, 9, 0), at(tuesday, 17, 0), 60, prefs)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	// Preferred categories annotate, they never exclude.
	assert.Equal(t, ReasonAvailable, slots[0].Reason)      // starts 09:00
	assert.Equal(t, ReasonPreferredTime, slots[1].Reason)  // starts 13:00
}

func TestBuildAvailabilityDeterministic(t *testing.T) {
	busy := []models.TimeInterval{
		busyBlock(tuesday, 9, 0, 10, 30, ""),
		busyBlock(tuesday, 14, 0, 15, 30, ""),
	}
	prefs := models.SchedulePreferences{WorkHoursOnly: true, EarliestHour: 8, LatestHour: 18}

	first, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 18, 0), 45, prefs)
	require.NoError(t, err)
	second, err := BuildAvailability(busy, at(tuesday, 8, 0), at(tuesday, 18, 0), 45, prefs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestErrorTypesAreDistinguishable(t *testing.T) {
	_, windowErr := BuildAvailability(nil, at(tuesday, 18, 0), at(tuesday, 8, 0), 30, models.SchedulePreferences{})
	_, durationErr := BuildAvailability(nil, at(tuesday, 8, 0), at(tuesday, 18, 0), -15, models.SchedulePreferences{})

	var w *InvalidWindowError
	var d *InvalidDurationError
	assert.True(t, errors.As(windowErr, &w))
	assert.False(t, errors.As(windowErr, &d))
	assert.True(t, errors.As(durationErr, &d))
	assert.False(t, errors.As(durationErr, &w))
}
