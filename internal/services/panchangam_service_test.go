package services

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

func TestCalculate_Day47(t *testing.T) {
	// Monday 2026-02-16 is day 47.
	d := time.Date(2026, 2, 16, 15, 30, 0, 0, time.UTC)
	if d.YearDay() != 47 {
		t.Fatalf("fixture drifted: day %d", d.YearDay())
	}

	p := Calculate(d)
	checks := []struct{ field, got, want string }{
		{"date", p.Date, "Mon Feb 16 2026"},
		{"tithi", p.Tithi, "Tritiya (Krishna Paksha)"},
		{"paksha", p.Paksha, KrishnaPaksha},
		{"nakshatra", p.Nakshatra, "Vishakha"},
		{"yoga", p.Yoga, "Vriddhi"},
		{"karana", p.Karana, "Vishti"},
		{"month", p.Month, "Vaisakha"},
		{"rahu", p.InauspiciousTimings.Rahu, "7:30 AM - 9:00 AM"},
		{"yamaganda", p.InauspiciousTimings.Yamaganda, "10:30 AM - 12:00 PM"},
		{"gulika", p.InauspiciousTimings.Gulika, "9:00 AM - 10:30 AM"},
		{"abhijit", p.AuspiciousTimings.Abhijit, "11:36 AM - 12:24 PM"},
		{"sunrise", p.Sunrise, "6:00 AM"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q; want %q", c.field, c.got, c.want)
		}
	}
}

func TestCalculate_ShuklaAndPurnima(t *testing.T) {
	cases := []struct {
		day    time.Time
		tithi  string
		paksha string
	}{
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "Dwitiya (Shukla Paksha)", ShuklaPaksha},          // day 1
		{time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), "Purnima/Amavasya (Shukla Paksha)", ShuklaPaksha}, // day 14
		{time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), "Pratipada (Krishna Paksha)", KrishnaPaksha},      // day 15
		{time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), "Pratipada (Shukla Paksha)", ShuklaPaksha},        // day 30
	}
	for _, tc := range cases {
		p := Calculate(tc.day)
		if p.Tithi != tc.tithi || p.Paksha != tc.paksha {
			t.Errorf("%s: got %q/%q; want %q/%q", tc.day.Format("2006-01-02"), p.Tithi, p.Paksha, tc.tithi, tc.paksha)
		}
	}
}

func TestCalculate_SameDateSameRecord(t *testing.T) {
	morning := time.Date(2026, 10, 17, 5, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 17, 23, 0, 0, 0, time.UTC)
	if !reflect.DeepEqual(Calculate(morning), Calculate(evening)) {
		t.Fatalf("same date should give the same panchangam")
	}
}

func TestPanchangamToday_Cached(t *testing.T) {
	now := testNow
	c, _ := newCache(t, &now)
	s := NewPanchangamService(c, zerolog.Nop())
	ctx := context.Background()

	p := s.Today(ctx)
	if !reflect.DeepEqual(p, Calculate(testNow)) {
		t.Fatalf("Today = %+v; want %+v", p, Calculate(testNow))
	}

	var cached domain.Panchangam
	if !c.GetDaily(ctx, panchangamTodayKey, &cached) {
		t.Fatal("expected today's panchangam in the cache")
	}
	if !reflect.DeepEqual(cached, p) {
		t.Fatalf("cached = %+v; want %+v", cached, p)
	}

	now = testNow.Add(24 * time.Hour)
	if got := s.Today(ctx); !reflect.DeepEqual(got, Calculate(now)) {
		t.Fatalf("next day should recompute, got %+v", got)
	}
}

func TestIsAuspiciousTime(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2026, 10, 17, h, m, 0, 0, time.UTC) }
	cases := []struct {
		t    time.Time
		want bool
	}{
		{at(4, 0), true},
		{at(4, 59), true},
		{at(5, 0), false},
		{at(11, 35), false},
		{at(11, 36), true},
		{at(12, 0), true},
		{at(12, 24), true},
		{at(12, 25), false},
		{at(18, 0), false},
	}
	for _, tc := range cases {
		if got := IsAuspiciousTime(tc.t); got != tc.want {
			t.Errorf("IsAuspiciousTime(%s) = %v; want %v", tc.t.Format("15:04"), got, tc.want)
		}
	}
}
