package services

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tbourn/bhakti-feed/internal/cache"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/engagement"
	"github.com/tbourn/bhakti-feed/internal/repo"
	"github.com/tbourn/bhakti-feed/internal/store"
)

// ----- Fake repo -----

type fakeContentRepo struct {
	mu sync.Mutex

	posts   []domain.Post
	reels   []domain.Reel
	music   []domain.MusicTrack
	temples []domain.Temple
	err     error

	calls   map[string]int
	regions []string
}

func (r *fakeContentRepo) hit(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	r.calls[op]++
}

func (r *fakeContentRepo) count(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

func (r *fakeContentRepo) RecentPosts(ctx context.Context, db *gorm.DB, limit int) ([]domain.Post, error) {
	r.hit("RecentPosts")
	return r.posts, r.err
}

func (r *fakeContentRepo) RecentReels(ctx context.Context, db *gorm.DB, limit int) ([]domain.Reel, error) {
	r.hit("RecentReels")
	return r.reels, r.err
}

func (r *fakeContentRepo) RecentMusic(ctx context.Context, db *gorm.DB, limit int) ([]domain.MusicTrack, error) {
	r.hit("RecentMusic")
	return r.music, r.err
}

func (r *fakeContentRepo) RecentTemples(ctx context.Context, db *gorm.DB, limit int) ([]domain.Temple, error) {
	r.hit("RecentTemples")
	return r.temples, r.err
}

func (r *fakeContentRepo) TopPostsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Post, error) {
	r.hit("TopPostsByRegion")
	r.regions = append(r.regions, region)
	return r.posts, r.err
}

func (r *fakeContentRepo) TopReelsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Reel, error) {
	r.hit("TopReelsByRegion")
	return r.reels, r.err
}

func (r *fakeContentRepo) TopMusicByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.MusicTrack, error) {
	r.hit("TopMusicByRegion")
	return r.music, r.err
}

func (r *fakeContentRepo) TopTemplesByState(ctx context.Context, db *gorm.DB, state string, limit int) ([]domain.Temple, error) {
	r.hit("TopTemplesByState")
	return r.temples, r.err
}

// ----- Helpers -----

// Saturday 2026-10-17 10:00 UTC (day 290).
var testNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func newKV(t *testing.T) store.KV {
	t.Helper()
	kv, err := store.OpenBadger("")
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newCache(t *testing.T, now *time.Time) (*cache.Store, store.KV) {
	t.Helper()
	kv := newKV(t)
	return cache.New(kv, cache.WithClock(func() time.Time { return *now })), kv
}

func newRecommendationService(t *testing.T, r *fakeContentRepo, now *time.Time) *RecommendationService {
	t.Helper()
	c, kv := newCache(t, now)
	ds := repo.FallbackDataset()
	return NewRecommendationService(nil, r, c, engagement.New(kv, zerolog.Nop()), &ds, zerolog.Nop())
}

func i64(v int64) *int64 { return &v }

var shivaTN = domain.UserContext{
	Region:   domain.RegionTamilNadu,
	Language: domain.LanguageTamil,
	Deity:    domain.DeityShiva,
}

// ----- Tests -----

func TestPosts_EmptyRepoUsesFallback(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{}
	s := newRecommendationService(t, r, &now)

	got := s.Posts(context.Background(), shivaTN, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d; want 3", len(got))
	}
	if got[0].Item.ID != "mock-post-1" || got[0].Score != float64(30+20+25+10) {
		t.Fatalf("top post = %s (%v)", got[0].Item.ID, got[0].Score)
	}
	wantReasons := []string{"From your region", "In your language", "Related to shiva", "Popular"}
	if !reflect.DeepEqual(got[0].Reasons, wantReasons) {
		t.Fatalf("reasons = %v; want %v", got[0].Reasons, wantReasons)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Fatalf("not sorted at %d: %v < %v", i, got[i-1].Score, got[i].Score)
		}
	}
}

func TestPosts_CachedWithinTTL(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{posts: []domain.Post{{ID: "p1", Region: "tamil_nadu", LikesCount: i64(10)}}}
	s := newRecommendationService(t, r, &now)
	ctx := context.Background()

	first := s.Posts(ctx, shivaTN, 5)
	second := s.Posts(ctx, shivaTN, 5)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached list differs:\n%+v\n%+v", first, second)
	}
	if n := r.count("RecentPosts"); n != 1 {
		t.Fatalf("repo hit %d times; want 1", n)
	}

	// a different limit is a different list
	s.Posts(ctx, shivaTN, 1)
	if n := r.count("RecentPosts"); n != 2 {
		t.Fatalf("repo hit %d times; want 2", n)
	}

	now = testNow.Add(DefaultRecommendationTTL + time.Minute)
	s.Posts(ctx, shivaTN, 5)
	if n := r.count("RecentPosts"); n != 3 {
		t.Fatalf("expired list should be rebuilt, repo hit %d times", n)
	}
}

func TestPosts_RepoErrorYieldsEmptyUncached(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{err: errors.New("db down")}
	s := newRecommendationService(t, r, &now)
	ctx := context.Background()

	if got := s.Posts(ctx, shivaTN, 5); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
	s.Posts(ctx, shivaTN, 5)
	if n := r.count("RecentPosts"); n != 2 {
		t.Fatalf("failures must not be cached, repo hit %d times", n)
	}
}

func TestPosts_TiesKeepFetchOrder(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{posts: []domain.Post{
		{ID: "b", Region: "kerala"},
		{ID: "a", Region: "kerala"},
		{ID: "c", Region: "tamil_nadu"},
	}}
	s := newRecommendationService(t, r, &now)

	got := s.Posts(context.Background(), shivaTN, 10)
	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.Item.ID)
	}
	if !reflect.DeepEqual(ids, []string{"c", "b", "a"}) {
		t.Fatalf("order = %v; want [c b a]", ids)
	}
}

func TestReels_ViewedPenaltyAndLimitClamp(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{reels: []domain.Reel{
		{ID: "r1", Region: "tamil_nadu"},
		{ID: "r2", Region: "tamil_nadu"},
	}}
	s := newRecommendationService(t, r, &now)
	ctx := context.Background()

	if isNew, err := s.RecordEngagement(ctx, domain.ViewedReels, "r1"); err != nil || !isNew {
		t.Fatalf("RecordEngagement: new=%v err=%v", isNew, err)
	}

	got := s.Reels(ctx, shivaTN, 0)
	if len(got) != 2 {
		t.Fatalf("len = %d; want 2", len(got))
	}
	if got[0].Item.ID != "r2" || got[0].Score != 30 || got[1].Score != 20 {
		t.Fatalf("viewed reel should drop by 10: %+v", got)
	}
}

func TestMusic_MorningAarti(t *testing.T) {
	now := time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC)
	r := &fakeContentRepo{music: []domain.MusicTrack{
		{ID: "m1", Title: "Evening Bhajan", Deity: "krishna"},
		{ID: "m2", Title: "Morning Aarti", Deity: "krishna"},
	}}
	s := newRecommendationService(t, r, &now)

	got := s.Music(context.Background(), domain.UserContext{Deity: domain.DeityKrishna}, 2)
	if len(got) != 2 || got[0].Item.ID != "m2" {
		t.Fatalf("aarti should lead in the morning: %+v", got)
	}
	if !slices.Contains(got[0].Reasons, "Morning aarti") {
		t.Fatalf("reasons = %v", got[0].Reasons)
	}
}

func TestMusic_HourFollowsClockLocation(t *testing.T) {
	// 02:00 UTC is 07:30 in India
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 10, 17, 2, 0, 0, 0, time.UTC).In(ist)
	r := &fakeContentRepo{music: []domain.MusicTrack{
		{ID: "m1", Title: "Evening Bhajan", Deity: "krishna"},
		{ID: "m2", Title: "Morning Aarti", Deity: "krishna"},
	}}
	s := newRecommendationService(t, r, &now)

	got := s.Music(context.Background(), domain.UserContext{Deity: domain.DeityKrishna}, 2)
	if len(got) != 2 || !slices.Contains(got[0].Reasons, "Morning aarti") {
		t.Fatalf("expected the morning bonus at 07:30 local, got %+v", got)
	}
}

func TestTemples_NotCached(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{}
	s := newRecommendationService(t, r, &now)
	ctx := context.Background()

	got := s.Temples(ctx, shivaTN, 0)
	if len(got) != DefaultTempleLimit {
		t.Fatalf("len = %d; want %d", len(got), DefaultTempleLimit)
	}
	if got[0].Item.ID != "mock-temple-1" || got[0].Score != float64(50+30+20+10) {
		t.Fatalf("top temple = %s (%v)", got[0].Item.ID, got[0].Score)
	}

	s.Temples(ctx, shivaTN, 0)
	if n := r.count("RecentTemples"); n != 2 {
		t.Fatalf("temple lists are rescored on every call, repo hit %d times", n)
	}
}

func TestDailyBhajan_CachedForTheDay(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{music: []domain.MusicTrack{
		{ID: "m1", Title: "Om Namah Shivaya", Deity: "shiva"},
		{ID: "m2", Title: "Govinda", Deity: "vishnu"},
	}}
	s := newRecommendationService(t, r, &now)
	ctx := context.Background()

	if b := s.DailyBhajan(ctx, shivaTN); b == nil || b.ID != "m1" {
		t.Fatalf("DailyBhajan = %+v; want m1", b)
	}

	// the singleton does not leak into the full music list
	if list := s.Music(ctx, shivaTN, 10); len(list) != 2 {
		t.Fatalf("music list len = %d; want 2", len(list))
	}
	calls := r.count("RecentMusic")

	r.music = []domain.MusicTrack{{ID: "m9", Deity: "shiva"}}
	if b := s.DailyBhajan(ctx, shivaTN); b == nil || b.ID != "m1" {
		t.Fatalf("same day should keep m1, got %+v", b)
	}
	if n := r.count("RecentMusic"); n != calls {
		t.Fatalf("cached bhajan should not query, repo hit %d times (was %d)", n, calls)
	}

	now = testNow.Add(24 * time.Hour)
	if b := s.DailyBhajan(ctx, shivaTN); b == nil || b.ID != "m9" {
		t.Fatalf("next day should pick m9, got %+v", b)
	}
}

func TestDailyBhajan_NilNotCached(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{err: errors.New("db down")}
	s := newRecommendationService(t, r, &now)
	ctx := context.Background()

	if b := s.DailyBhajan(ctx, shivaTN); b != nil {
		t.Fatalf("expected nil, got %+v", b)
	}

	r.err = nil
	r.music = []domain.MusicTrack{{ID: "m1"}}
	if b := s.DailyBhajan(ctx, shivaTN); b == nil || b.ID != "m1" {
		t.Fatalf("nil must not be cached, got %+v", b)
	}
}

func TestTempleOfTheDay(t *testing.T) {
	now := testNow
	r := &fakeContentRepo{}
	s := newRecommendationService(t, r, &now)
	ctx := context.Background()

	tp := s.TempleOfTheDay(ctx, domain.RegionMaharashtra, domain.DeityGanesh)
	if tp == nil || tp.ID != "mock-temple-4" || tp.Location != "Prabhadevi, Mumbai" {
		t.Fatalf("TempleOfTheDay = %+v", tp)
	}

	s.TempleOfTheDay(ctx, domain.RegionMaharashtra, domain.DeityGanesh)
	if n := r.count("RecentTemples"); n != 1 {
		t.Fatalf("temple of the day should be cached, repo hit %d times", n)
	}
}

func TestRecordEngagement(t *testing.T) {
	now := testNow
	s := newRecommendationService(t, &fakeContentRepo{}, &now)
	ctx := context.Background()

	if _, err := s.RecordEngagement(ctx, "shared_posts", "p1"); !errors.Is(err, ErrInvalidEngagement) {
		t.Fatalf("unknown kind: got %v", err)
	}
	if _, err := s.RecordEngagement(ctx, domain.LikedPosts, "  "); !errors.Is(err, ErrInvalidEngagement) {
		t.Fatalf("blank id: got %v", err)
	}

	if isNew, err := s.RecordEngagement(ctx, domain.LikedPosts, "p1"); err != nil || !isNew {
		t.Fatalf("first like: new=%v err=%v", isNew, err)
	}
	if isNew, err := s.RecordEngagement(ctx, domain.LikedPosts, "p1"); err != nil || isNew {
		t.Fatalf("repeat like: new=%v err=%v", isNew, err)
	}

	e, err := s.Engagement.Get(ctx)
	if err != nil || !e.LikedPosts.Has("p1") {
		t.Fatalf("engagement = %+v err=%v", e, err)
	}
}

func TestClampLimit(t *testing.T) {
	cases := []struct{ in, def, want int }{
		{0, 10, 10},
		{-3, 10, 10},
		{7, 10, 7},
		{500, 10, MaxListLimit},
	}
	for _, tc := range cases {
		if got := clampLimit(tc.in, tc.def); got != tc.want {
			t.Errorf("clampLimit(%d, %d) = %d; want %d", tc.in, tc.def, got, tc.want)
		}
	}
}
