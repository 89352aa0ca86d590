package models

import "fmt"

// Time-of-day and day-of-week category tags recognized by the preference
// filter. Tags outside this vocabulary are silently ignored.
const (
	CategoryMorning   = "morning"
	CategoryAfternoon = "afternoon"
	CategoryEvening   = "evening"
	CategoryWeekend   = "weekend"
	CategoryNight     = "night"
)

// SchedulePreferences describes a user's scheduling constraints. It is built
// once per request and read-only during a search call.
type SchedulePreferences struct {
	AvoidCategories     []string `json:"avoidCategories,omitempty"`
	PreferredCategories []string `json:"preferredCategories,omitempty"` // ranking only, never exclusion
	WorkHoursOnly       bool     `json:"workHoursOnly"`
	EarliestHour        int      `json:"earliestHour"` // 0-23
	LatestHour          int      `json:"latestHour"`   // 0-23
	MinimumGapMinutes   int      `json:"minimumGapMinutes,omitempty"` // reserved; not yet enforced
}

// Validate checks the work-hour bounds. It is called at the HTTP boundary so
// that a malformed preference object is rejected before any search begins.
func (p SchedulePreferences) Validate() error {
	if p.WorkHoursOnly && p.EarliestHour >= p.LatestHour {
		return fmt.Errorf("earliestHour (%d) must be below latestHour (%d) when workHoursOnly is set",
			p.EarliestHour, p.LatestHour)
	}
	if p.EarliestHour < 0 || p.EarliestHour > 23 || p.LatestHour < 0 || p.LatestHour > 23 {
		return fmt.Errorf("work hours must be within 0-23, got [%d, %d]", p.EarliestHour, p.LatestHour)
	}
	if p.MinimumGapMinutes < 0 {
		return fmt.Errorf("minimumGapMinutes must be non-negative, got %d", p.MinimumGapMinutes)
	}
	return nil
}
