package scheduling

import (
	"fmt"
	"time"
)

// InvalidWindowError reports a search window whose end is not after its start.
// It is raised before any iteration begins; an empty result list is never
// signaled through an error.
type InvalidWindowError struct {
	WindowStart time.Time
	WindowEnd   time.Time
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("invalidWindow: window end %s is not after start %s",
		e.WindowEnd.Format(time.RFC3339), e.WindowStart.Format(time.RFC3339))
}

// InvalidDurationError reports a non-positive requested duration.
type InvalidDurationError struct {
	Minutes int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalidDuration: duration must be positive, got %d minutes", e.Minutes)
}
