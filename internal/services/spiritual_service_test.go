package services

import (
	"context"
	"reflect"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/textgen"
)

// ----- Fake generator -----

type fakeGen struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
	types []textgen.ContentType
	last  []textgen.Message
}

func (g *fakeGen) Generate(ctx context.Context, t textgen.ContentType, msgs []textgen.Message) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	g.types = append(g.types, t)
	g.last = msgs
	return g.text, g.err
}

func newSpiritualService(t *testing.T, gen textgen.Generator, now *time.Time) *SpiritualContentService {
	t.Helper()
	c, _ := newCache(t, now)
	return NewSpiritualContentService(gen, c, zerolog.Nop())
}

// ----- Tests -----

func TestDailyMessage_GeneratedAndCached(t *testing.T) {
	now := testNow
	gen := &fakeGen{text: "Shiva is within you."}
	s := newSpiritualService(t, gen, &now)
	ctx := context.Background()

	if got := s.DailyMessage(ctx, "Shiva"); got != "Shiva is within you." {
		t.Fatalf("DailyMessage = %q", got)
	}
	gen.text = "something else"
	if got := s.DailyMessage(ctx, "shiva"); got != "Shiva is within you." {
		t.Fatalf("same day should be served from cache, got %q", got)
	}
	if gen.calls != 1 || gen.types[0] != textgen.SpiritualMessage {
		t.Fatalf("generator calls=%d types=%v", gen.calls, gen.types)
	}
	if len(gen.last) != 1 || gen.last[0].Role != textgen.RoleUser || !strings.Contains(gen.last[0].Content, "Shiva devotion") {
		t.Fatalf("unexpected prompt: %+v", gen.last)
	}

	now = testNow.Add(24 * time.Hour)
	if got := s.DailyMessage(ctx, "shiva"); got != "something else" || gen.calls != 2 {
		t.Fatalf("next day should regenerate, got %q after %d calls", got, gen.calls)
	}
}

func TestDailyMessage_FallbackIsDeterministic(t *testing.T) {
	now := testNow
	gen := &fakeGen{err: textgen.ErrUnavailable}
	s := newSpiritualService(t, gen, &now)
	ctx := context.Background()

	want := dailyMessages["krishna"][now.YearDay()%len(dailyMessages["krishna"])]
	if got := s.DailyMessage(ctx, "krishna"); got != want {
		t.Fatalf("fallback = %q; want %q", got, want)
	}
	// fallback text is cached as well
	if got := s.DailyMessage(ctx, "krishna"); got != want || gen.calls != 1 {
		t.Fatalf("fallback should be cached, got %q after %d calls", got, gen.calls)
	}

	// unknown deities read the "other" bucket
	other := dailyMessages["other"]
	if got := s.DailyMessage(ctx, "zeus"); got != other[now.YearDay()%len(other)] {
		t.Fatalf("unknown deity = %q", got)
	}
}

func TestDevotionalQuote_NilGeneratorIsDisabled(t *testing.T) {
	now := testNow
	s := newSpiritualService(t, nil, &now)

	if q := s.DevotionalQuote(context.Background(), "shiva"); !slices.Contains(devotionalQuotes["shiva"], q) {
		t.Fatalf("quote %q not from the shiva bucket", q)
	}

	all := s.DevotionalQuotes("shiva")
	if !reflect.DeepEqual(all, devotionalQuotes["shiva"]) {
		t.Fatalf("DevotionalQuotes = %v", all)
	}
	all[0] = "mutated"
	if devotionalQuotes["shiva"][0] == "mutated" {
		t.Fatal("DevotionalQuotes must return a copy")
	}
}

func TestWeeklyHoroscope_CachedForTheWeek(t *testing.T) {
	now := testNow
	gen := &fakeGen{err: textgen.ErrDisabled}
	s := newSpiritualService(t, gen, &now)
	ctx := context.Background()

	if got := s.WeeklyHoroscope(ctx, "ophiuchus"); got != weeklyHoroscopes["leo"] {
		t.Fatalf("unknown sign should read leo, got %q", got)
	}
	if got := s.WeeklyHoroscope(ctx, " Pisces "); got != weeklyHoroscopes["pisces"] {
		t.Fatalf("pisces = %q", got)
	}
	if gen.calls != 2 {
		t.Fatalf("calls = %d; want 2", gen.calls)
	}

	gen.err, gen.text = nil, "a generated week"
	now = time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC) // Sunday, same week
	if got := s.WeeklyHoroscope(ctx, "pisces"); got != weeklyHoroscopes["pisces"] || gen.calls != 2 {
		t.Fatalf("Sunday belongs to the cached week, got %q after %d calls", got, gen.calls)
	}

	now = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) // next Monday
	if got := s.WeeklyHoroscope(ctx, "pisces"); got != "a generated week" {
		t.Fatalf("new week should regenerate, got %q", got)
	}
	if last := gen.types[len(gen.types)-1]; last != textgen.Horoscope {
		t.Fatalf("content type = %q", last)
	}
}

func TestGitaSlokaFor(t *testing.T) {
	day100 := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	if day100.YearDay() != 100 {
		t.Fatalf("fixture drifted: day %d", day100.YearDay())
	}

	en := GitaSlokaFor(day100, "English")
	if en.Chapter != 4 || en.Verse != 7 {
		t.Fatalf("day 100 = %d.%d; want 4.7", en.Chapter, en.Verse)
	}

	hi := GitaSlokaFor(day100, "hindi")
	if hi.Sanskrit != en.Sanskrit || hi.Translation == en.Translation {
		t.Fatalf("hindi should share the verse and translate it: %+v", hi)
	}

	// unsupported languages read English
	if got := GitaSlokaFor(day100, "tamil"); !reflect.DeepEqual(got, en) {
		t.Fatalf("tamil = %+v; want english", got)
	}
}

func TestDailyGitaSloka_Cached(t *testing.T) {
	now := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	s := newSpiritualService(t, nil, &now)
	ctx := context.Background()

	if got := s.DailyGitaSloka(ctx, "telugu"); !reflect.DeepEqual(got, GitaSlokaFor(now, "telugu")) {
		t.Fatalf("DailyGitaSloka = %+v", got)
	}

	var cached domain.GitaSloka
	if !s.Cache.GetDaily(ctx, DailyPrefix+"-gita-sloka-telugu", &cached) || cached.Chapter != 4 {
		t.Fatalf("expected cached telugu sloka, got %+v", cached)
	}
}

func TestClearOldCache(t *testing.T) {
	now := testNow
	s := newSpiritualService(t, nil, &now)
	s.ListTTL = DefaultRecommendationTTL
	ctx := context.Background()

	s.DailyMessage(ctx, "shiva")
	s.WeeklyHoroscope(ctx, "leo")
	for key, put := range map[string]func() error{
		"panchangam":  func() error { return s.Cache.PutDaily(ctx, "panchangam-today", "x") },
		"trending":    func() error { return s.Cache.PutDaily(ctx, "trending-kerala-malayalam-krishna", "x") },
		"recommended": func() error { return s.Cache.Put(ctx, "recommended-posts-a-b-c--10", []int{}, now) },
		"engagement":  func() error { return s.Cache.PutDaily(ctx, "user-engagement-like", "kept") },
	} {
		if err := put(); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}

	if n, err := s.ClearOldCache(ctx); err != nil || n != 0 {
		t.Fatalf("same day sweep removed %d (err=%v); want 0", n, err)
	}

	// next day, same week: daily entries and lists go, weekly stays
	now = testNow.Add(24 * time.Hour)
	if n, err := s.ClearOldCache(ctx); err != nil || n != 4 {
		t.Fatalf("next day sweep removed %d (err=%v); want 4", n, err)
	}

	var h string
	if !s.Cache.GetWeekly(ctx, WeeklyPrefix+"-horoscope-leo", &h) {
		t.Fatal("weekly horoscope should survive a daily rollover")
	}
	if _, ok := s.Cache.Load(ctx, "user-engagement-like"); !ok {
		t.Fatal("unrelated keys must not be swept")
	}

	// idempotent
	if n, err := s.ClearOldCache(ctx); err != nil || n != 0 {
		t.Fatalf("repeat sweep removed %d (err=%v); want 0", n, err)
	}
}
