package calendar

import (
	"context"
	"fmt"
	"time"

	"slotwise/models"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// BusyFetcher retrieves busy intervals for a calendar over a window. It is the
// boundary to the external calendar collaborator; the scheduling core never
// fetches anything itself.
type BusyFetcher interface {
	FetchBusy(ctx context.Context, calendarID string, windowStart, windowEnd time.Time) ([]models.TimeInterval, error)
}

// GoogleBusyFetcher queries the Google Calendar free/busy endpoint.
type GoogleBusyFetcher struct {
	svc *gcal.Service
}

func NewGoogleBusyFetcher(ctx context.Context, apiKey string) (*GoogleBusyFetcher, error) {
	svc, err := gcal.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to create service: %w", err)
	}
	return &GoogleBusyFetcher{svc: svc}, nil
}

func (f *GoogleBusyFetcher) FetchBusy(ctx context.Context, calendarID string, windowStart, windowEnd time.Time) ([]models.TimeInterval, error) {
	req := &gcal.FreeBusyRequest{
		TimeMin: windowStart.Format(time.RFC3339),
		TimeMax: windowEnd.Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: calendarID}},
	}
	resp, err := f.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: freebusy query failed: %w", err)
	}
	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("calendar: no free/busy data for %q", calendarID)
	}

	records := make([]models.BusyEventRecord, 0, len(cal.Busy))
	for _, b := range cal.Busy {
		records = append(records, models.BusyEventRecord{Start: b.Start, End: b.End})
	}
	intervals, err := NormalizeBusyRecords(records)
	if err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	return intervals, nil
}
