package scheduling

import (
	"fmt"
	"strings"
	"time"

	"slotwise/models"
)

// The alternative-slot search scans a fixed business-hour grid: starts on the
// hour and half hour from 08:00 through 16:30, regardless of the user's
// SchedulePreferences. This is a deliberately simpler "find me anything soon"
// search, distinct from BuildAvailability's configurable filtering.
const (
	altSearchStartHour   = 8
	altSearchLastHour    = 16 // inclusive; final candidate start is 16:30
	altSearchStepMinutes = 30

	DefaultMaxSuggestions = 3
	DefaultSearchDays     = 7
)

// Resolution types accepted by ResolveConflict.
const (
	ResolveMove      = "move"
	ResolveCancel    = "cancel"
	ResolveOverwrite = "overwrite"
	ResolveUnknown   = "unknown"
)

// DetectConflicts reports every busy interval overlapping the proposed one.
// Reports come back in the order the busy list was supplied (calendar-list
// order, not chronological). An empty result means no conflicts; this never
// fails.
func DetectConflicts(proposed models.TimeInterval, busy []models.TimeInterval) []models.ConflictReport {
	var reports []models.ConflictReport
	for _, b := range busy {
		if !proposed.Overlaps(b) {
			continue
		}
		reports = append(reports, models.ConflictReport{
			SourceID:        b.SourceID,
			Label:           b.Label,
			OverlapStart:    laterOf(proposed.Start, b.Start),
			OverlapEnd:      earlierOf(proposed.End, b.End),
			DurationMinutes: b.DurationMinutes(),
		})
	}
	return reports
}

// SuggestAlternatives searches forward from the proposed start for the nearest
// non-conflicting slots of the requested duration. The scan is greedy and
// bounded: searchDays days, 18 half-hour grid positions per day, stopping as
// soon as maxSuggestions slots are collected. An empty list means nothing was
// free within the horizon.
func SuggestAlternatives(
	proposed models.TimeInterval,
	busy []models.TimeInterval,
	durationMinutes, maxSuggestions, searchDays int,
) []models.CandidateSlot {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	if searchDays <= 0 {
		searchDays = DefaultSearchDays
	}

	length := time.Duration(durationMinutes) * time.Minute
	dayZero := time.Date(
		proposed.Start.Year(), proposed.Start.Month(), proposed.Start.Day(),
		0, 0, 0, 0, proposed.Start.Location(),
	)

	var suggestions []models.CandidateSlot
	for offset := 0; offset < searchDays; offset++ {
		day := dayZero.AddDate(0, 0, offset)
		for hour := altSearchStartHour; hour <= altSearchLastHour; hour++ {
			for minute := 0; minute < 60; minute += altSearchStepMinutes {
				start := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
				if start.Before(proposed.Start) {
					continue
				}
				trial := models.TimeInterval{Start: start, End: start.Add(length)}
				if len(DetectConflicts(trial, busy)) > 0 {
					continue
				}
				reason := "Available"
				if offset > 0 {
					reason = fmt.Sprintf("Available in %d days", offset)
				}
				suggestions = append(suggestions, models.CandidateSlot{Interval: trial, Reason: reason})
				if len(suggestions) >= maxSuggestions {
					return suggestions
				}
			}
		}
	}
	return suggestions
}

// ResolveConflict dispatches on the requested resolution type and returns a
// plain plan describing what the calling layer should do. Unsupported types
// produce an "unknown" plan; callers must check Type.
func ResolveConflict(
	proposed models.TimeInterval,
	conflicts []models.ConflictReport,
	resolutionType string,
) models.ResolutionPlan {
	names := conflictNames(conflicts)

	switch resolutionType {
	case ResolveMove:
		return models.ResolutionPlan{
			Type:              ResolveMove,
			Action:            "reschedule_existing",
			Message:           fmt.Sprintf("Move %s to make room for the new event.", names),
			ConflictingEvents: conflicts,
		}
	case ResolveCancel:
		return models.ResolutionPlan{
			Type:              ResolveCancel,
			Action:            "cancel_existing",
			Message:           fmt.Sprintf("Cancel %s and book the new event in its place.", names),
			ConflictingEvents: conflicts,
		}
	case ResolveOverwrite:
		return models.ResolutionPlan{
			Type:              ResolveOverwrite,
			Action:            "book_anyway",
			Message:           fmt.Sprintf("Book the new event on top of %s. You will be double-booked.", names),
			ConflictingEvents: conflicts,
			Warning:           true,
		}
	}
	return models.ResolutionPlan{
		Type:              ResolveUnknown,
		Action:            "none",
		Message:           fmt.Sprintf("Unsupported resolution type %q.", resolutionType),
		ConflictingEvents: conflicts,
	}
}

func conflictNames(conflicts []models.ConflictReport) string {
	var names []string
	for _, c := range conflicts {
		switch {
		case c.Label != "":
			names = append(names, c.Label)
		case c.SourceID != "":
			names = append(names, c.SourceID)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("%d conflicting event(s)", len(conflicts))
	}
	return strings.Join(names, ", ")
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
