package dateutil

import (
	"testing"
	"time"
)

func TestWeekStart_SundayBased(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "wednesday maps to previous sunday",
			in:   time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC),
			want: "2026-01-04",
		},
		{
			name: "sunday maps to itself",
			in:   time.Date(2026, 1, 4, 23, 59, 0, 0, time.UTC),
			want: "2026-01-04",
		},
		{
			name: "saturday maps to start of same week",
			in:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
			want: "2026-01-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekKey(WeekStart(tt.in))
			if got != tt.want {
				t.Errorf("WeekStart(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestWeekStart_PinnedToUTC(t *testing.T) {
	// Late evening in a western timezone is already the next day in UTC terms
	// only if we truncate in local time. The key must not depend on the zone's
	// offset around midnight.
	loc := time.FixedZone("UTC-8", -8*3600)
	local := time.Date(2026, 3, 7, 23, 30, 0, 0, loc) // Saturday local

	ws := WeekStart(local)
	if ws.Location() != time.UTC {
		t.Errorf("WeekStart location = %v, want UTC", ws.Location())
	}
	if got, want := WeekKey(ws), "2026-03-01"; got != want {
		t.Errorf("WeekKey = %s, want %s", got, want)
	}
}

func TestParseWeekKey_NormalizesToSunday(t *testing.T) {
	got, err := ParseWeekKey("2026-01-07") // a Wednesday
	if err != nil {
		t.Fatalf("ParseWeekKey: %v", err)
	}
	if key := WeekKey(got); key != "2026-01-04" {
		t.Errorf("ParseWeekKey normalized to %s, want 2026-01-04", key)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	if _, err := ParseDate("07/01/2026"); err != ErrInvalidDateFormat {
		t.Errorf("ParseDate error = %v, want ErrInvalidDateFormat", err)
	}
}

func TestFormatWeekRange(t *testing.T) {
	ws := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	if got, want := FormatWeekRange(ws), "Jan 4 - Jan 10, 2026"; got != want {
		t.Errorf("FormatWeekRange = %q, want %q", got, want)
	}
}
