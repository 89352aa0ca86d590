package scheduling

import (
	"sort"
	"time"

	"slotwise/models"
)

// Slot reason tags attached to candidate slots.
const (
	ReasonAvailable     = "available"
	ReasonPreferredTime = "preferred_time"
)

// BuildAvailability computes the free candidate slots inside
// [windowStart, windowEnd) that fit durationMinutes and pass the preference
// filter. Busy intervals may be unsorted and may overlap each other; they are
// copied and sorted internally, so the caller's slice is never touched.
//
// The category-avoidance filter evaluates only the start instant of each gap:
// a gap starting outside an avoided window is returned whole even when it
// runs into one. WorkHoursOnly is stricter: the gap's end is clipped to
// latestHour on its start day before the duration check, so a trailing gap
// never counts free time past the end of the working day.
func BuildAvailability(
	busy []models.TimeInterval,
	windowStart, windowEnd time.Time,
	durationMinutes int,
	prefs models.SchedulePreferences,
) ([]models.CandidateSlot, error) {
	if !windowEnd.After(windowStart) {
		return nil, &InvalidWindowError{WindowStart: windowStart, WindowEnd: windowEnd}
	}
	if durationMinutes <= 0 {
		return nil, &InvalidDurationError{Minutes: durationMinutes}
	}

	sorted := make([]models.TimeInterval, len(busy))
	copy(sorted, busy)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	minLen := time.Duration(durationMinutes) * time.Minute
	var candidates []models.CandidateSlot

	cursor := windowStart
	for _, b := range sorted {
		if cursor.Before(b.Start) {
			gapEnd := b.Start
			if gapEnd.After(windowEnd) {
				gapEnd = windowEnd
			}
			candidates = appendCandidate(candidates, cursor, gapEnd, minLen, prefs)
		}
		// Overlapping busy intervals are absorbed here: an interval fully
		// contained in an earlier one never moves the cursor backwards.
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(windowEnd) {
		candidates = appendCandidate(candidates, cursor, windowEnd, minLen, prefs)
	}

	return candidates, nil
}

func appendCandidate(
	out []models.CandidateSlot,
	start, end time.Time,
	minLen time.Duration,
	prefs models.SchedulePreferences,
) []models.CandidateSlot {
	if !passesPreferences(start, prefs) {
		return out
	}
	if prefs.WorkHoursOnly {
		dayCut := time.Date(start.Year(), start.Month(), start.Day(),
			prefs.LatestHour, 0, 0, 0, start.Location())
		if end.After(dayCut) {
			end = dayCut
		}
	}
	if end.Sub(start) < minLen {
		return out
	}
	return append(out, models.CandidateSlot{
		Interval: models.TimeInterval{Start: start, End: end},
		Reason:   slotReason(start, prefs),
	})
}

// passesPreferences applies the avoidance rules to a candidate gap's start
// instant. Each rule is an independent AND condition; unknown category tags
// never reject.
func passesPreferences(instant time.Time, prefs models.SchedulePreferences) bool {
	hour := instant.Hour()

	if prefs.WorkHoursOnly {
		if hour < prefs.EarliestHour || hour >= prefs.LatestHour {
			return false
		}
		if isWeekend(instant) {
			return false
		}
	}

	for _, tag := range prefs.AvoidCategories {
		switch tag {
		case models.CategoryMorning:
			if hour < 12 {
				return false
			}
		case models.CategoryEvening:
			if hour >= 17 {
				return false
			}
		case models.CategoryWeekend:
			if isWeekend(instant) {
				return false
			}
		}
	}
	return true
}

func slotReason(instant time.Time, prefs models.SchedulePreferences) string {
	for _, tag := range prefs.PreferredCategories {
		if matchesCategory(instant, tag) {
			return ReasonPreferredTime
		}
	}
	return ReasonAvailable
}

// matchesCategory maps an instant onto the tag vocabulary. Used only for
// ranking annotations, never for exclusion. Unknown tags never match.
func matchesCategory(t time.Time, tag string) bool {
	hour := t.Hour()
	switch tag {
	case models.CategoryMorning:
		return hour < 12
	case models.CategoryAfternoon:
		return hour >= 12 && hour < 17
	case models.CategoryEvening:
		return hour >= 17
	case models.CategoryNight:
		return hour >= 21 || hour < 6
	case models.CategoryWeekend:
		return isWeekend(t)
	}
	return false
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
