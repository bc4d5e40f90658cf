// Package services – SpiritualContentService
//
// This file implements the short-form devotional text shown on the
// dashboard: the daily message and quote (per deity), the weekly horoscope
// (per zodiac sign) and the Bhagavad Gita verse of the day (per language).
// Generated text is preferred; when the generator is disabled or fails, a
// curated entry is picked deterministically by day of year. Results are
// cached for the calendar day or week so repeated reads are stable.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/cache"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/observability"
	"github.com/tbourn/bhakti-feed/internal/textgen"
	"github.com/tbourn/bhakti-feed/internal/utils"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Cache key prefixes for daily and weekly devotional content.
const (
	DailyPrefix  = "dharma-daily"
	WeeklyPrefix = "dharma-weekly"
)

// SpiritualContentService produces cached devotional text.
type SpiritualContentService struct {
	Gen   textgen.Generator
	Cache *cache.Store

	// ListTTL, when positive, lets ClearOldCache also drop recommendation
	// lists older than the window.
	ListTTL time.Duration

	Log zerolog.Logger
}

// NewSpiritualContentService constructs a SpiritualContentService. A nil
// generator behaves as a disabled one.
func NewSpiritualContentService(gen textgen.Generator, c *cache.Store, log zerolog.Logger) *SpiritualContentService {
	if gen == nil {
		gen = textgen.Disabled{}
	}
	return &SpiritualContentService{Gen: gen, Cache: c, Log: log}
}

func (s *SpiritualContentService) span(ctx context.Context, op, key, val string) (context.Context, trace.Span) {
	return otel.Tracer("services/SpiritualContentService").Start(ctx, op,
		trace.WithAttributes(attribute.String(key, val)),
	)
}

// DailyMessage returns today's devotional message for deity.
func (s *SpiritualContentService) DailyMessage(ctx context.Context, deity string) string {
	d := domain.ParseDeity(deity)
	ctx, span := s.span(ctx, "DailyMessage", "deity", string(d))
	defer span.End()

	key := fmt.Sprintf("%s-message-%s", DailyPrefix, d)
	prompt := fmt.Sprintf("Generate a brief, uplifting spiritual message for today that connects with %s devotion. Make it warm, encouraging, and meaningful.", displayName(string(d)))
	return s.daily(ctx, key, textgen.SpiritualMessage, prompt, func() string {
		return s.pick(curatedBucket(dailyMessages, d))
	})
}

// DevotionalQuote returns today's devotional quote for deity.
func (s *SpiritualContentService) DevotionalQuote(ctx context.Context, deity string) string {
	d := domain.ParseDeity(deity)
	ctx, span := s.span(ctx, "DevotionalQuote", "deity", string(d))
	defer span.End()

	key := fmt.Sprintf("%s-quote-%s", DailyPrefix, d)
	prompt := fmt.Sprintf("Generate a beautiful, inspiring devotional quote related to %s that can uplift someone's day.", displayName(string(d)))
	return s.daily(ctx, key, textgen.Quote, prompt, func() string {
		return s.pick(curatedBucket(devotionalQuotes, d))
	})
}

// DevotionalQuotes returns the full curated quote list for deity.
func (s *SpiritualContentService) DevotionalQuotes(deity string) []string {
	b := curatedBucket(devotionalQuotes, domain.ParseDeity(deity))
	return append([]string(nil), b...)
}

// WeeklyHoroscope returns this week's horoscope for sign. Unknown signs
// read as "leo". The entry is stamped with the week's Monday.
func (s *SpiritualContentService) WeeklyHoroscope(ctx context.Context, sign string) string {
	z := NormalizeSign(sign)
	ctx, span := s.span(ctx, "WeeklyHoroscope", "zodiac", z)
	defer span.End()

	key := fmt.Sprintf("%s-horoscope-%s", WeeklyPrefix, z)
	var cached string
	if s.Cache.GetWeekly(ctx, key, &cached) && cached != "" {
		return cached
	}
	prompt := fmt.Sprintf("Generate a weekly horoscope for %s that is uplifting, spiritually oriented, and provides guidance for the week ahead. Focus on spiritual growth, relationships, and inner peace.", displayName(z))
	text := s.generate(ctx, textgen.Horoscope, prompt, func() string { return weeklyHoroscopes[z] })
	if err := s.Cache.PutWeekly(ctx, key, text); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("cache horoscope")
	}
	return text
}

// DailyGitaSloka returns the verse of the day rendered in language. The
// verse is chosen by day of year; only the translation varies by language.
func (s *SpiritualContentService) DailyGitaSloka(ctx context.Context, language string) domain.GitaSloka {
	lang := gitaLanguage(language)
	ctx, span := s.span(ctx, "DailyGitaSloka", "language", lang)
	defer span.End()

	key := fmt.Sprintf("%s-gita-sloka-%s", DailyPrefix, lang)
	var cached domain.GitaSloka
	if s.Cache.GetDaily(ctx, key, &cached) && cached.Chapter > 0 {
		return cached
	}
	sloka := GitaSlokaFor(s.Cache.Now(), lang)
	if err := s.Cache.PutDaily(ctx, key, sloka); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("cache gita sloka")
	}
	return sloka
}

// GitaSlokaFor returns the curated verse for t's day of year in language.
func GitaSlokaFor(t time.Time, language string) domain.GitaSloka {
	v := gitaVerses[utils.DayOfYear(t)%len(gitaVerses)]
	return v.render(language)
}

// SweepRules returns the rules used by ClearOldCache.
func (s *SpiritualContentService) SweepRules() []cache.SweepRule {
	rules := []cache.SweepRule{
		cache.Daily(DailyPrefix),
		cache.Weekly(WeeklyPrefix),
		cache.Daily("daily-bhajan-"),
		cache.Daily("temple-of-day-"),
		cache.Daily(PanchangamPrefix),
		cache.Daily(TrendingPrefix),
	}
	if s.ListTTL > 0 {
		rules = append(rules, cache.Fresh("recommended-", s.ListTTL))
	}
	return rules
}

// ClearOldCache removes daily entries not stored today and weekly entries
// not stamped with this week's Monday. It returns the number removed.
func (s *SpiritualContentService) ClearOldCache(ctx context.Context) (int, error) {
	ctx, span := otel.Tracer("services/SpiritualContentService").Start(ctx, "ClearOldCache")
	defer span.End()
	return s.Cache.ClearOld(ctx, s.SweepRules()...)
}

// daily serves key from today's cache or generates and caches it.
func (s *SpiritualContentService) daily(ctx context.Context, key string, t textgen.ContentType, prompt string, fallback func() string) string {
	var cached string
	if s.Cache.GetDaily(ctx, key, &cached) && cached != "" {
		return cached
	}
	text := s.generate(ctx, t, prompt, fallback)
	if err := s.Cache.PutDaily(ctx, key, text); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("cache daily content")
	}
	return text
}

// generate asks the generator and falls back to curated text on any error.
func (s *SpiritualContentService) generate(ctx context.Context, t textgen.ContentType, prompt string, fallback func() string) string {
	text, err := s.Gen.Generate(ctx, t, []textgen.Message{{Role: textgen.RoleUser, Content: prompt}})
	if err == nil && text != "" {
		return text
	}
	observability.ObserveFallback(string(t))
	ev := s.Log.Warn()
	if errors.Is(err, textgen.ErrDisabled) {
		ev = s.Log.Debug()
	}
	ev.Err(err).Str("type", string(t)).Msg("text generator unavailable; using curated content")
	return fallback()
}

// pick selects from bucket by today's day of year.
func (s *SpiritualContentService) pick(bucket []string) string {
	if len(bucket) == 0 {
		return ""
	}
	return bucket[utils.DayOfYear(s.Cache.Now())%len(bucket)]
}
