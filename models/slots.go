package models

import "time"

// CandidateSlot is a free interval proposed to the caller, with a short tag
// explaining why it was selected.
type CandidateSlot struct {
	Interval TimeInterval `json:"interval"`
	Reason   string       `json:"reason"`
}

// ConflictReport describes one overlap between a proposed interval and an
// existing busy event. Computed fresh on every conflict check, never persisted.
type ConflictReport struct {
	SourceID        string    `json:"sourceId,omitempty"`
	Label           string    `json:"label,omitempty"`
	OverlapStart    time.Time `json:"overlapStart"`
	OverlapEnd      time.Time `json:"overlapEnd"`
	DurationMinutes int       `json:"durationMinutes"` // length of the conflicting event
}

// ResolutionPlan is a plain description of how a booking conflict should be
// handled. Callers must check Type: unsupported resolution types yield an
// "unknown" plan rather than an error.
type ResolutionPlan struct {
	Type              string           `json:"type"` // "move", "cancel", "overwrite" or "unknown"
	Action            string           `json:"action"`
	Message           string           `json:"message"`
	ConflictingEvents []ConflictReport `json:"conflictingEvents,omitempty"`
	Warning           bool             `json:"warning,omitempty"` // set for overwrite plans
}
