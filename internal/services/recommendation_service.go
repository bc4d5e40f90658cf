// Package services – RecommendationService
//
// This file implements the recommendation engine: fetch a bounded window of
// recent candidates, score each against the user context, sort by score
// (ties keep fetch order), truncate and cache. Posts, reels and music lists
// are cached for a validity window; temple lists are always rescored. Daily
// singletons (bhajan of the day, temple of the day) are derived from the
// top-ranked item and cached for the calendar day.
//
// Read paths never fail: repository errors are logged and surface as an
// empty list, and an empty repository is replaced by the fallback dataset.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tbourn/bhakti-feed/internal/cache"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/engagement"
	"github.com/tbourn/bhakti-feed/internal/observability"
	"github.com/tbourn/bhakti-feed/internal/scoring"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ContentRepo defines the read contract over the content collections.
// Recent* return rows newest first; Top* return one region's rows ordered
// by popularity.
type ContentRepo interface {
	RecentPosts(ctx context.Context, db *gorm.DB, limit int) ([]domain.Post, error)
	RecentReels(ctx context.Context, db *gorm.DB, limit int) ([]domain.Reel, error)
	RecentMusic(ctx context.Context, db *gorm.DB, limit int) ([]domain.MusicTrack, error)
	RecentTemples(ctx context.Context, db *gorm.DB, limit int) ([]domain.Temple, error)

	TopPostsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Post, error)
	TopReelsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Reel, error)
	TopMusicByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.MusicTrack, error)
	TopTemplesByState(ctx context.Context, db *gorm.DB, state string, limit int) ([]domain.Temple, error)
}

// Candidate windows and default list sizes.
const (
	candidateWindow       = 50
	templeCandidateWindow = 30

	DefaultListLimit   = 10
	DefaultTempleLimit = 5
	MaxListLimit       = 50
)

// DefaultRecommendationTTL is the validity window of cached lists.
const DefaultRecommendationTTL = 6 * time.Hour

// RecommendationService ranks content for a user context.
type RecommendationService struct {
	DB         *gorm.DB
	Repo       ContentRepo
	Cache      *cache.Store
	Engagement *engagement.Store

	// Fallback replaces a kind's candidates when the repository returns no
	// rows. Nil disables the substitution.
	Fallback *domain.Dataset

	// TTL bounds cached posts/reels/music lists.
	TTL time.Duration

	Log zerolog.Logger
}

// NewRecommendationService constructs a RecommendationService with the
// default list validity window.
func NewRecommendationService(db *gorm.DB, r ContentRepo, c *cache.Store, e *engagement.Store, fallback *domain.Dataset, log zerolog.Logger) *RecommendationService {
	return &RecommendationService{
		DB:         db,
		Repo:       r,
		Cache:      c,
		Engagement: e,
		Fallback:   fallback,
		TTL:        DefaultRecommendationTTL,
		Log:        log,
	}
}

func (s *RecommendationService) startSpan(ctx context.Context, op string, uc domain.UserContext, limit int) (context.Context, trace.Span) {
	return otel.Tracer("services/RecommendationService").Start(ctx, op,
		trace.WithAttributes(
			attribute.String("user.region", string(uc.Region)),
			attribute.String("user.language", string(uc.Language)),
			attribute.String("user.deity", string(uc.Deity)),
			attribute.Int("limit", limit),
		),
	)
}

func listKey(kind domain.Kind, limit int, parts ...string) string {
	return fmt.Sprintf("recommended-%s-%s-%d", kind, strings.Join(parts, "-"), limit)
}

// Posts returns up to limit posts ranked for uc.
func (s *RecommendationService) Posts(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.PostItem] {
	limit = clampLimit(limit, DefaultListLimit)
	ctx, span := s.startSpan(ctx, "Posts", uc, limit)
	defer span.End()

	key := listKey(domain.KindPosts, limit, string(uc.Region), string(uc.Language), string(uc.Deity), uc.ZodiacSign)
	e := s.engagement(ctx)
	now := s.Cache.Now()
	return recommend(ctx, s, domain.KindPosts, key, limit,
		func(ctx context.Context) ([]domain.Post, error) { return s.Repo.RecentPosts(ctx, s.DB, candidateWindow) },
		s.fallbackPosts(), domain.PostItems,
		func(p domain.PostItem) domain.ScoredItem[domain.PostItem] { return scoring.ScorePost(p, uc, e, now) },
	)
}

// Reels returns up to limit reels ranked for uc. The zodiac sign does not
// influence reels and is not part of the cache key.
func (s *RecommendationService) Reels(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.ReelItem] {
	limit = clampLimit(limit, DefaultListLimit)
	ctx, span := s.startSpan(ctx, "Reels", uc, limit)
	defer span.End()

	key := listKey(domain.KindReels, limit, string(uc.Region), string(uc.Language), string(uc.Deity))
	e := s.engagement(ctx)
	now := s.Cache.Now()
	return recommend(ctx, s, domain.KindReels, key, limit,
		func(ctx context.Context) ([]domain.Reel, error) { return s.Repo.RecentReels(ctx, s.DB, candidateWindow) },
		s.fallbackReels(), domain.ReelItems,
		func(r domain.ReelItem) domain.ScoredItem[domain.ReelItem] { return scoring.ScoreReel(r, uc, e, now) },
	)
}

// Music returns up to limit tracks ranked for uc.
func (s *RecommendationService) Music(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.MusicItem] {
	limit = clampLimit(limit, DefaultListLimit)
	ctx, span := s.startSpan(ctx, "Music", uc, limit)
	defer span.End()

	key := listKey(domain.KindMusic, limit, string(uc.Region), string(uc.Language), string(uc.Deity), uc.ZodiacSign)
	e := s.engagement(ctx)
	now := s.Cache.Now()
	return recommend(ctx, s, domain.KindMusic, key, limit,
		func(ctx context.Context) ([]domain.MusicTrack, error) { return s.Repo.RecentMusic(ctx, s.DB, candidateWindow) },
		s.fallbackMusic(), domain.MusicItems,
		func(m domain.MusicItem) domain.ScoredItem[domain.MusicItem] { return scoring.ScoreMusic(m, uc, e, now) },
	)
}

// Temples returns up to limit temples ranked by uc's region and deity.
// Temple lists are not cached.
func (s *RecommendationService) Temples(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.TempleItem] {
	limit = clampLimit(limit, DefaultTempleLimit)
	ctx, span := s.startSpan(ctx, "Temples", uc, limit)
	defer span.End()

	return recommend(ctx, s, domain.KindTemples, "", limit,
		func(ctx context.Context) ([]domain.Temple, error) {
			return s.Repo.RecentTemples(ctx, s.DB, templeCandidateWindow)
		},
		s.fallbackTemples(), domain.TempleItems,
		func(t domain.TempleItem) domain.ScoredItem[domain.TempleItem] { return scoring.ScoreTemple(t, uc) },
	)
}

// DailyBhajan returns today's top-ranked track for uc, or nil when there is
// none. A found track is cached for the calendar day; nil is not cached.
func (s *RecommendationService) DailyBhajan(ctx context.Context, uc domain.UserContext) *domain.MusicItem {
	ctx, span := s.startSpan(ctx, "DailyBhajan", uc, 1)
	defer span.End()

	key := fmt.Sprintf("daily-bhajan-%s-%s-%s-%s", uc.Region, uc.Language, uc.Deity, uc.ZodiacSign)
	var cached domain.MusicItem
	if s.Cache.GetDaily(ctx, key, &cached) {
		return &cached
	}
	top := s.Music(ctx, uc, 1)
	if len(top) == 0 {
		return nil
	}
	item := top[0].Item
	if err := s.Cache.PutDaily(ctx, key, item); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("cache daily bhajan")
	}
	return &item
}

// TempleOfTheDay returns today's top-ranked temple for region and deity,
// or nil when there is none.
func (s *RecommendationService) TempleOfTheDay(ctx context.Context, region domain.Region, deity domain.Deity) *domain.TempleItem {
	uc := domain.UserContext{Region: region, Deity: deity}
	ctx, span := s.startSpan(ctx, "TempleOfTheDay", uc, 1)
	defer span.End()

	key := fmt.Sprintf("temple-of-day-%s-%s", region, deity)
	var cached domain.TempleItem
	if s.Cache.GetDaily(ctx, key, &cached) {
		return &cached
	}
	top := s.Temples(ctx, uc, 1)
	if len(top) == 0 {
		return nil
	}
	item := top[0].Item
	if err := s.Cache.PutDaily(ctx, key, item); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("cache temple of the day")
	}
	return &item
}

// RecordEngagement adds id to the engagement set for kind. It reports
// whether the id was new; recording a present id is a no-op.
func (s *RecommendationService) RecordEngagement(ctx context.Context, kind domain.EngagementKind, id string) (bool, error) {
	ctx, span := otel.Tracer("services/RecommendationService").Start(ctx, "RecordEngagement",
		trace.WithAttributes(
			attribute.String("engagement.kind", string(kind)),
			attribute.String("item.id", id),
		),
	)
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" || !kind.Valid() {
		return false, ErrInvalidEngagement
	}
	return s.Engagement.Record(ctx, kind, id)
}

// engagement loads the engagement record; failures score as no engagement.
func (s *RecommendationService) engagement(ctx context.Context) domain.UserEngagement {
	if s.Engagement == nil {
		return domain.NewUserEngagement()
	}
	e, err := s.Engagement.Get(ctx)
	if err != nil {
		s.Log.Warn().Err(err).Msg("engagement unavailable; scoring without it")
	}
	return e
}

func (s *RecommendationService) fallbackPosts() []domain.Post {
	if s.Fallback == nil {
		return nil
	}
	return s.Fallback.Posts
}

func (s *RecommendationService) fallbackReels() []domain.Reel {
	if s.Fallback == nil {
		return nil
	}
	return s.Fallback.Reels
}

func (s *RecommendationService) fallbackMusic() []domain.MusicTrack {
	if s.Fallback == nil {
		return nil
	}
	return s.Fallback.Music
}

func (s *RecommendationService) fallbackTemples() []domain.Temple {
	if s.Fallback == nil {
		return nil
	}
	return s.Fallback.Temples
}

// recommend runs fetch → fallback → normalize → score → rank → cache for
// one kind. An empty key disables list caching.
func recommend[R, T any](
	ctx context.Context,
	s *RecommendationService,
	kind domain.Kind,
	key string,
	limit int,
	fetch func(context.Context) ([]R, error),
	fallback []R,
	normalize func([]R) []T,
	score func(T) domain.ScoredItem[T],
) []domain.ScoredItem[T] {
	if key != "" {
		var cached []domain.ScoredItem[T]
		if s.Cache.GetFresh(ctx, key, s.TTL, &cached) && cached != nil {
			return cached
		}
	}

	rows, err := fetch(ctx)
	if err != nil {
		s.Log.Warn().Err(err).Str("kind", string(kind)).Msg("content repository unavailable")
		return []domain.ScoredItem[T]{}
	}
	if len(rows) == 0 && len(fallback) > 0 {
		observability.ObserveFallback(string(kind))
		s.Log.Debug().Str("kind", string(kind)).Msg("repository empty; using fallback dataset")
		rows = fallback
	}

	ranked := scoring.Rank(scoring.ScoreAll(normalize(rows), score), limit)
	if key != "" {
		if err := s.Cache.Put(ctx, key, ranked, s.Cache.Now()); err != nil {
			s.Log.Warn().Err(err).Str("key", key).Msg("cache recommendations")
		}
	}
	return ranked
}

// clampLimit maps non-positive limits to def and caps at MaxListLimit.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
