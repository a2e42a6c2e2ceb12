package checklist

import (
	"testing"
	"time"
)

func TestKeyFor(t *testing.T) {
	tests := []struct {
		name      string
		at        time.Time
		resetHour int
		want      DayKey
	}{
		{
			name:      "afternoon maps to calendar date",
			at:        time.Date(2025, 6, 10, 15, 30, 0, 0, time.Local),
			resetHour: 3,
			want:      "2025-06-10",
		},
		{
			name:      "one second before boundary maps to previous day",
			at:        time.Date(2025, 6, 10, 2, 59, 59, 0, time.Local),
			resetHour: 3,
			want:      "2025-06-09",
		},
		{
			name:      "exactly at boundary maps to calendar date",
			at:        time.Date(2025, 6, 10, 3, 0, 0, 0, time.Local),
			resetHour: 3,
			want:      "2025-06-10",
		},
		{
			name:      "midnight maps to previous day",
			at:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local),
			resetHour: 3,
			want:      "2025-06-09",
		},
		{
			name:      "boundary crosses month start",
			at:        time.Date(2025, 7, 1, 1, 0, 0, 0, time.Local),
			resetHour: 3,
			want:      "2025-06-30",
		},
		{
			name:      "boundary crosses year start",
			at:        time.Date(2026, 1, 1, 2, 30, 0, 0, time.Local),
			resetHour: 3,
			want:      "2025-12-31",
		},
		{
			name:      "custom reset hour",
			at:        time.Date(2025, 6, 10, 4, 0, 0, 0, time.Local),
			resetHour: 5,
			want:      "2025-06-09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeyFor(tt.at, tt.resetHour); got != tt.want {
				t.Errorf("KeyFor(%v, %d) = %s, want %s", tt.at, tt.resetHour, got, tt.want)
			}
		})
	}
}

func TestParseDayKey(t *testing.T) {
	key, err := ParseDayKey("2025-06-10")
	if err != nil {
		t.Fatalf("ParseDayKey() error = %v", err)
	}
	if key != "2025-06-10" {
		t.Errorf("ParseDayKey() = %s, want 2025-06-10", key)
	}

	for _, bad := range []string{"", "2025-6-10", "06/10/2025", "2025-13-01", "yesterday"} {
		if _, err := ParseDayKey(bad); err == nil {
			t.Errorf("ParseDayKey(%q) expected error", bad)
		}
	}
}

func TestDayKey_PrevNext(t *testing.T) {
	key := DayKey("2025-03-01")
	if got := key.Prev(); got != "2025-02-28" {
		t.Errorf("Prev() = %s, want 2025-02-28", got)
	}
	if got := key.Next(); got != "2025-03-02" {
		t.Errorf("Next() = %s, want 2025-03-02", got)
	}
	// Leap year
	if got := DayKey("2024-03-01").Prev(); got != "2024-02-29" {
		t.Errorf("Prev() across leap day = %s, want 2024-02-29", got)
	}
}

func TestDayKey_Before(t *testing.T) {
	if !DayKey("2025-06-09").Before("2025-06-10") {
		t.Error("2025-06-09 should be before 2025-06-10")
	}
	if DayKey("2025-06-10").Before("2025-06-10") {
		t.Error("a key should not be before itself")
	}
	if DayKey("2025-12-31").Before("2025-02-01") {
		t.Error("2025-12-31 should not be before 2025-02-01")
	}
}
