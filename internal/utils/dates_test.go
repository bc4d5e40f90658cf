package utils

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		// Wednesday -> Monday of the same week
		{time.Date(2026, 10, 14, 15, 4, 0, 0, time.UTC), time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)},
		// Monday -> itself at midnight
		{time.Date(2026, 10, 12, 23, 59, 0, 0, time.UTC), time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)},
		// Sunday belongs to the previous week
		{time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC), time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)},
		// crosses a month boundary
		{time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC), time.Date(2026, 10, 26, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := WeekStart(tc.in); !got.Equal(tc.want) {
			t.Fatalf("WeekStart(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	if got := DayOfYear(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)); got != 1 {
		t.Fatalf("Jan 1 = %d; want 1", got)
	}
	if got := DayOfYear(time.Date(2026, 2, 16, 18, 0, 0, 0, time.UTC)); got != 47 {
		t.Fatalf("Feb 16 = %d; want 47", got)
	}
	if got := DayOfYear(time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)); got != 366 {
		t.Fatalf("leap Dec 31 = %d; want 366", got)
	}
}

func TestSameDayAndDayKey(t *testing.T) {
	a := time.Date(2026, 10, 17, 0, 0, 1, 0, time.UTC)
	b := time.Date(2026, 10, 17, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	if !SameDay(a, b) || SameDay(b, c) {
		t.Fatalf("SameDay mismatch")
	}
	if DayKey(a) != "2026-10-17" {
		t.Fatalf("DayKey = %q", DayKey(a))
	}
	if !StartOfDay(b).Equal(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("StartOfDay mismatch")
	}
}
