package models

import (
	"errors"
	"testing"
	"time"
)

func mustInterval(t *testing.T, start, end time.Time) TimeInterval {
	t.Helper()
	iv, err := NewInterval(start, end, "", "")
	if err != nil {
		t.Fatalf("NewInterval(%v, %v): %v", start, end, err)
	}
	return iv
}

func TestNewIntervalRejectsNonPositiveRanges(t *testing.T) {
	at := time.Date(2025, 11, 25, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		start, end time.Time
	}{
		{"zero duration", at, at},
		{"end before start", at, at.Add(-time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInterval(tc.start, tc.end, "x", "id")
			if err == nil {
				t.Fatalf("expected error for [%v, %v)", tc.start, tc.end)
			}
			var invalid *InvalidIntervalError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidIntervalError, got %T: %v", err, err)
			}
		})
	}
}

func TestOverlapsHalfOpenSemantics(t *testing.T) {
	day := time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	cases := []struct {
		name string
		a, b TimeInterval
		want bool
	}{
		{"partial overlap", mustInterval(t, at(9, 0), at(10, 0)), mustInterval(t, at(9, 30), at(10, 30)), true},
		{"containment", mustInterval(t, at(9, 0), at(12, 0)), mustInterval(t, at(10, 0), at(11, 0)), true},
		{"identical", mustInterval(t, at(9, 0), at(10, 0)), mustInterval(t, at(9, 0), at(10, 0)), true},
		{"back to back", mustInterval(t, at(9, 0), at(10, 0)), mustInterval(t, at(10, 0), at(11, 0)), false},
		{"disjoint", mustInterval(t, at(9, 0), at(10, 0)), mustInterval(t, at(14, 0), at(15, 0)), false},
		{"one minute shared", mustInterval(t, at(9, 0), at(10, 1)), mustInterval(t, at(10, 0), at(11, 0)), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Errorf("a.Overlaps(b) = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Errorf("b.Overlaps(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2025, 11, 25, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"ninety minutes", start.Add(90 * time.Minute), 90},
		{"one minute", start.Add(time.Minute), 1},
		{"sub-minute remainder truncated", start.Add(90*time.Second + 29*time.Second), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			iv := mustInterval(t, start, tc.end)
			if got := iv.DurationMinutes(); got != tc.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, tc.want)
			}
		})
	}
}
