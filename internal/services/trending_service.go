// Package services – TrendingService
//
// This file serves the regional trending panel: the five most popular rows
// of each kind in the user's region, cached for the day. When the region
// has no music or no posts, or the repository fails, the fallback dataset
// filtered by the user context is served instead and nothing is cached.
package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tbourn/bhakti-feed/internal/cache"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/observability"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TrendingPrefix prefixes trending cache keys.
const TrendingPrefix = "trending-"

const trendingPerKind = 5

// TrendingContent is the regional trending panel.
type TrendingContent struct {
	Music   []domain.MusicItem  `json:"music"`
	Posts   []domain.PostItem   `json:"posts"`
	Reels   []domain.ReelItem   `json:"reels"`
	Temples []domain.TempleItem `json:"temples"`
}

// TrendingService serves regional trending content.
type TrendingService struct {
	DB       *gorm.DB
	Repo     ContentRepo
	Cache    *cache.Store
	Fallback *domain.Dataset
	Log      zerolog.Logger
}

// NewTrendingService constructs a TrendingService.
func NewTrendingService(db *gorm.DB, r ContentRepo, c *cache.Store, fallback *domain.Dataset, log zerolog.Logger) *TrendingService {
	return &TrendingService{DB: db, Repo: r, Cache: c, Fallback: fallback, Log: log}
}

// Regional returns trending content for uc's region.
func (s *TrendingService) Regional(ctx context.Context, uc domain.UserContext) TrendingContent {
	ctx, span := otel.Tracer("services/TrendingService").Start(ctx, "Regional",
		trace.WithAttributes(
			attribute.String("user.region", string(uc.Region)),
			attribute.String("user.language", string(uc.Language)),
			attribute.String("user.deity", string(uc.Deity)),
		),
	)
	defer span.End()

	key := fmt.Sprintf("%s%s-%s-%s", TrendingPrefix, uc.Region, uc.Language, uc.Deity)
	var cached TrendingContent
	if s.Cache.GetDaily(ctx, key, &cached) {
		return cached.nonNil()
	}

	content, err := s.fetch(ctx, string(uc.Region))
	if err != nil {
		s.Log.Warn().Err(err).Msg("trending query failed; using fallback dataset")
		return s.fallback(uc)
	}
	if len(content.Music) == 0 || len(content.Posts) == 0 {
		return s.fallback(uc)
	}
	if err := s.Cache.PutDaily(ctx, key, content); err != nil {
		s.Log.Warn().Err(err).Str("key", key).Msg("cache trending")
	}
	return content
}

func (s *TrendingService) fetch(ctx context.Context, region string) (TrendingContent, error) {
	music, err := s.Repo.TopMusicByRegion(ctx, s.DB, region, trendingPerKind)
	if err != nil {
		return TrendingContent{}, fmt.Errorf("music: %w", err)
	}
	posts, err := s.Repo.TopPostsByRegion(ctx, s.DB, region, trendingPerKind)
	if err != nil {
		return TrendingContent{}, fmt.Errorf("posts: %w", err)
	}
	reels, err := s.Repo.TopReelsByRegion(ctx, s.DB, region, trendingPerKind)
	if err != nil {
		return TrendingContent{}, fmt.Errorf("reels: %w", err)
	}
	temples, err := s.Repo.TopTemplesByState(ctx, s.DB, region, trendingPerKind)
	if err != nil {
		return TrendingContent{}, fmt.Errorf("temples: %w", err)
	}
	return TrendingContent{
		Music:   withArtist(domain.MusicItems(music)),
		Posts:   domain.PostItems(posts),
		Reels:   domain.ReelItems(reels),
		Temples: domain.TempleItems(temples),
	}, nil
}

// fallback filters the fallback dataset: music and posts by region,
// language or deity; reels by region; temples by state or deity.
func (s *TrendingService) fallback(uc domain.UserContext) TrendingContent {
	observability.ObserveFallback("trending")
	out := TrendingContent{}.nonNil()
	if s.Fallback == nil {
		return out
	}
	r, l, d := string(uc.Region), string(uc.Language), string(uc.Deity)

	for _, m := range domain.MusicItems(s.Fallback.Music) {
		if len(out.Music) < trendingPerKind && (is(r, string(m.Region)) || is(l, string(m.Language)) || is(d, string(m.Deity))) {
			out.Music = append(out.Music, m)
		}
	}
	out.Music = withArtist(out.Music)
	for _, p := range domain.PostItems(s.Fallback.Posts) {
		if len(out.Posts) < trendingPerKind && (is(r, string(p.Region)) || is(l, string(p.Language)) || is(d, string(p.Deity))) {
			out.Posts = append(out.Posts, p)
		}
	}
	for _, rl := range domain.ReelItems(s.Fallback.Reels) {
		if len(out.Reels) < trendingPerKind && is(r, string(rl.Region)) {
			out.Reels = append(out.Reels, rl)
		}
	}
	for _, t := range domain.TempleItems(s.Fallback.Temples) {
		if len(out.Temples) < trendingPerKind && (is(r, string(t.State)) || is(d, string(t.Deity))) {
			out.Temples = append(out.Temples, t)
		}
	}
	return out
}

// is reports whether a context value selects an item value; unset and
// "other" select nothing.
func is(ctx, item string) bool {
	return ctx != "" && ctx != "other" && ctx == item
}

func withArtist(items []domain.MusicItem) []domain.MusicItem {
	for i := range items {
		if items[i].Artist == "" {
			items[i].Artist = "Unknown"
		}
	}
	return items
}

func (c TrendingContent) nonNil() TrendingContent {
	if c.Music == nil {
		c.Music = []domain.MusicItem{}
	}
	if c.Posts == nil {
		c.Posts = []domain.PostItem{}
	}
	if c.Reels == nil {
		c.Reels = []domain.ReelItem{}
	}
	if c.Temples == nil {
		c.Temples = []domain.TempleItem{}
	}
	return c
}
