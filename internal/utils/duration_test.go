package utils

import (
	"testing"
	"time"
)

func TestDurationText(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	cases := []struct {
		end  time.Time
		want string
	}{
		{start.Add(48 * time.Hour), "2 days"},
		{start.Add(26*time.Hour + 30*time.Minute), "1 day 2 hours 30 minutes"},
		{start.Add(24*time.Hour + 30*time.Minute), "1 day 30 minutes"},
		{start.Add(90 * time.Minute), "1 hour 30 minutes"},
		{start.Add(45 * time.Minute), "45 minutes"},
		{start.Add(-90 * time.Minute), "1 hour 30 minutes"}, // swapped inputs
		{start, "0 minutes"},
	}
	for _, c := range cases {
		if got := DurationText(start, c.end); got != c.want {
			t.Fatalf("DurationText(%v): expected %q, got %q", c.end.Sub(start), c.want, got)
		}
	}
}
