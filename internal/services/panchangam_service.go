// Package services – PanchangamService
//
// This file computes the daily Hindu calendar record from the date alone.
// The calculation is a simplified cyclic model over the day of year, with
// weekday tables for the inauspicious periods and constant muhurta and
// sunrise/sunset strings. No network or location input is involved.
package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/cache"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/utils"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PanchangamPrefix prefixes panchangam cache keys.
const PanchangamPrefix = "panchangam-"

const panchangamTodayKey = PanchangamPrefix + "today"

var tithis = []string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima/Amavasya",
}

var nakshatras = []string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshta", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

var yogas = []string{
	"Vishkambha", "Preeti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shoola", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyana", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

var karanas = []string{
	"Bava", "Balava", "Kaulava", "Taitila", "Garija",
	"Vanija", "Vishti", "Shakuni", "Chatushpada", "Naga",
	"Kimstughna",
}

// lunarMonths is indexed by calendar month.
var lunarMonths = [12]string{
	"Chaitra", "Vaisakha", "Jyeshtha", "Ashadha",
	"Shravana", "Bhadrapada", "Ashwin", "Kartika",
	"Margashirsha", "Pausha", "Magha", "Phalguna",
}

// Inauspicious periods indexed by weekday (Sunday = 0).
var (
	rahuKala = [7]string{
		"4:30 PM - 6:00 PM", "7:30 AM - 9:00 AM", "3:00 PM - 4:30 PM", "12:00 PM - 1:30 PM",
		"1:30 PM - 3:00 PM", "10:30 AM - 12:00 PM", "9:00 AM - 10:30 AM",
	}
	yamagandaKala = [7]string{
		"12:00 PM - 1:30 PM", "10:30 AM - 12:00 PM", "9:00 AM - 10:30 AM", "7:30 AM - 9:00 AM",
		"3:00 PM - 4:30 PM", "1:30 PM - 3:00 PM", "12:00 PM - 1:30 PM",
	}
	gulikaKala = [7]string{
		"1:30 PM - 3:00 PM", "9:00 AM - 10:30 AM", "1:30 PM - 3:00 PM", "3:00 PM - 4:30 PM",
		"12:00 PM - 1:30 PM", "7:30 AM - 9:00 AM", "10:30 AM - 12:00 PM",
	}
)

// Fixed timings. These do not vary with date or location.
const (
	abhijitMuhurta = "11:36 AM - 12:24 PM"
	amritKala      = "9:00 AM - 10:30 AM"
	brahmaMuhurta  = "4:30 AM - 5:30 AM"
	sunrise        = "6:00 AM"
	sunset         = "6:30 PM"
	moonRise       = "8:00 PM"
)

// Paksha names.
const (
	ShuklaPaksha  = "Shukla Paksha"  // waxing
	KrishnaPaksha = "Krishna Paksha" // waning
)

// PanchangamService serves the daily panchangam.
type PanchangamService struct {
	Cache *cache.Store
	Log   zerolog.Logger
}

// NewPanchangamService constructs a PanchangamService.
func NewPanchangamService(c *cache.Store, log zerolog.Logger) *PanchangamService {
	return &PanchangamService{Cache: c, Log: log}
}

// Today returns today's panchangam, cached for the calendar day.
func (s *PanchangamService) Today(ctx context.Context) domain.Panchangam {
	now := s.Cache.Now()
	ctx, span := otel.Tracer("services/PanchangamService").Start(ctx, "Today",
		trace.WithAttributes(attribute.String("date", utils.DayKey(now))),
	)
	defer span.End()

	var cached domain.Panchangam
	if s.Cache.GetDaily(ctx, panchangamTodayKey, &cached) && cached.Date != "" {
		return cached
	}
	p := Calculate(now)
	if err := s.Cache.PutDaily(ctx, panchangamTodayKey, p); err != nil {
		s.Log.Warn().Err(err).Msg("cache panchangam")
	}
	return p
}

// Calculate derives the panchangam for date. It is a pure function of the
// calendar date.
func Calculate(date time.Time) domain.Panchangam {
	doy := utils.DayOfYear(date)

	tithiIndex := doy % 30
	paksha := ShuklaPaksha
	if tithiIndex >= 15 {
		paksha = KrishnaPaksha
	}
	tithi := tithis[tithiIndex%len(tithis)]

	wd := int(date.Weekday())
	return domain.Panchangam{
		Date:      date.Format("Mon Jan 02 2006"),
		Tithi:     fmt.Sprintf("%s (%s)", tithi, paksha),
		Nakshatra: nakshatras[scaledIndex(doy, 0.9, len(nakshatras))],
		Yoga:      yogas[scaledIndex(doy, 0.8, len(yogas))],
		Karana:    karanas[(doy*2)%len(karanas)],
		Paksha:    paksha,
		Month:     lunarMonths[date.Month()-1],
		AuspiciousTimings: domain.AuspiciousTimings{
			Abhijit: abhijitMuhurta,
			Amrit:   amritKala,
			Brahma:  brahmaMuhurta,
		},
		InauspiciousTimings: domain.InauspiciousTimings{
			Rahu:      rahuKala[wd],
			Yamaganda: yamagandaKala[wd],
			Gulika:    gulikaKala[wd],
		},
		Sunrise:  sunrise,
		Sunset:   sunset,
		MoonRise: moonRise,
	}
}

// scaledIndex returns floor(doy*factor) mod n.
func scaledIndex(doy int, factor float64, n int) int {
	return int(math.Floor(float64(doy)*factor)) % n
}

// IsAuspiciousTime reports whether t falls in Brahma Muhurta (the 4 o'clock
// hour) or Abhijit Muhurta (11:36 to 12:24).
func IsAuspiciousTime(t time.Time) bool {
	h, m := t.Hour(), t.Minute()
	if h == 4 {
		return true
	}
	return (h == 11 && m >= 36) || (h == 12 && m <= 24)
}
