package models

import (
	"fmt"
	"time"
)

// TimeInterval represents a half-open [Start, End) time range. It stands for
// either a busy block supplied by the calendar collaborator or a free block
// computed by the scheduling engine; the engine never mutates busy intervals.
type TimeInterval struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Label    string    `json:"label,omitempty"`    // e.g. source event title
	SourceID string    `json:"sourceId,omitempty"` // opaque id of the originating calendar event
}

// InvalidIntervalError is returned when an interval's end is not after its start.
type InvalidIntervalError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("invalidInterval: end %s is not after start %s",
		e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
}

// NewInterval builds a TimeInterval, rejecting zero- and negative-duration ranges.
func NewInterval(start, end time.Time, label, sourceID string) (TimeInterval, error) {
	if !end.After(start) {
		return TimeInterval{}, &InvalidIntervalError{Start: start, End: end}
	}
	return TimeInterval{Start: start, End: end, Label: label, SourceID: sourceID}, nil
}

// Overlaps reports whether two half-open intervals share any instant.
// Back-to-back intervals that only touch at a boundary do not overlap.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// DurationMinutes returns the interval length in whole minutes.
func (iv TimeInterval) DurationMinutes() int {
	return int(iv.End.Sub(iv.Start) / time.Minute)
}
