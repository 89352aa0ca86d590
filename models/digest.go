package models

import "time"

// AgendaDigestPayload is the queue task payload for the agenda digest worker.
type AgendaDigestPayload struct {
	UserID     string `json:"userId"`
	CalendarID string `json:"calendarId"`
	Date       string `json:"date"` // e.g. "2025-11-25"
}

// AgendaDigest is the cached result of a digest run: the free slots a user has
// on a given day, precomputed so the assistant can answer instantly.
type AgendaDigest struct {
	UserID      string          `json:"userId"`
	Date        string          `json:"date"`
	Slots       []CandidateSlot `json:"slots"`
	GeneratedAt time.Time       `json:"generatedAt"`
}
