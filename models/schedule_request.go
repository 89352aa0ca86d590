package models

// BusyEventRecord is the raw busy block shape supplied by the calendar
// collaborator. Start/End carry either an RFC 3339 timestamp or a date-only
// value ("2006-01-02") for all-day events, which normalize to
// midnight-to-midnight intervals.
type BusyEventRecord struct {
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
	Label    string `json:"label,omitempty"`
	SourceID string `json:"sourceId,omitempty"`
}

// AvailabilityRequest defines the payload for the availability search endpoint.
// Preferences may be supplied inline; otherwise the stored preferences for
// UserID are used (falling back to a permissive default).
type AvailabilityRequest struct {
	BusyEvents      []BusyEventRecord    `json:"busyEvents"`
	WindowStart     string               `json:"windowStart" binding:"required"`
	WindowEnd       string               `json:"windowEnd" binding:"required"`
	DurationMinutes int                  `json:"durationMinutes" binding:"required"`
	UserID          string               `json:"userId,omitempty"`
	Preferences     *SchedulePreferences `json:"preferences,omitempty"`
	MaxResults      int                  `json:"maxResults,omitempty"`
}

// ConflictCheckRequest defines the payload for the conflict detection endpoint.
type ConflictCheckRequest struct {
	Proposed   BusyEventRecord   `json:"proposed" binding:"required"`
	BusyEvents []BusyEventRecord `json:"busyEvents"`
}

// AlternativesRequest defines the payload for the alternative-slot search.
type AlternativesRequest struct {
	Proposed        BusyEventRecord   `json:"proposed" binding:"required"`
	BusyEvents      []BusyEventRecord `json:"busyEvents"`
	DurationMinutes int               `json:"durationMinutes" binding:"required"`
	MaxSuggestions  int               `json:"maxSuggestions,omitempty"`
	SearchDays      int               `json:"searchDays,omitempty"`
}

// ResolveRequest defines the payload for the conflict resolution endpoint.
// Conflicts are re-detected server side from the supplied busy list.
type ResolveRequest struct {
	Proposed       BusyEventRecord   `json:"proposed" binding:"required"`
	BusyEvents     []BusyEventRecord `json:"busyEvents"`
	ResolutionType string            `json:"resolutionType" binding:"required"`
}
