// Package app assembles the storage, cache and services from configuration
// so the HTTP server and the ops CLI share one construction path. It also
// implements the background refresh jobs run by the scheduler.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/tbourn/bhakti-feed/internal/cache"
	"github.com/tbourn/bhakti-feed/internal/config"
	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/engagement"
	"github.com/tbourn/bhakti-feed/internal/repo"
	"github.com/tbourn/bhakti-feed/internal/services"
	"github.com/tbourn/bhakti-feed/internal/store"
	"github.com/tbourn/bhakti-feed/internal/textgen"
)

// contentRepoShim adapts the repository free functions to the
// services.ContentRepo interface and bounds every query by timeout.
type contentRepoShim struct {
	timeout time.Duration
}

func (s contentRepoShim) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// RecentPosts proxies repo.RecentPosts.
func (s contentRepoShim) RecentPosts(ctx context.Context, db *gorm.DB, limit int) ([]domain.Post, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.RecentPosts(ctx, db, limit)
}

// RecentReels proxies repo.RecentReels.
func (s contentRepoShim) RecentReels(ctx context.Context, db *gorm.DB, limit int) ([]domain.Reel, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.RecentReels(ctx, db, limit)
}

// RecentMusic proxies repo.RecentMusic.
func (s contentRepoShim) RecentMusic(ctx context.Context, db *gorm.DB, limit int) ([]domain.MusicTrack, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.RecentMusic(ctx, db, limit)
}

// RecentTemples proxies repo.RecentTemples.
func (s contentRepoShim) RecentTemples(ctx context.Context, db *gorm.DB, limit int) ([]domain.Temple, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.RecentTemples(ctx, db, limit)
}

// TopPostsByRegion proxies repo.TopPostsByRegion.
func (s contentRepoShim) TopPostsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Post, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.TopPostsByRegion(ctx, db, region, limit)
}

// TopReelsByRegion proxies repo.TopReelsByRegion.
func (s contentRepoShim) TopReelsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Reel, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.TopReelsByRegion(ctx, db, region, limit)
}

// TopMusicByRegion proxies repo.TopMusicByRegion.
func (s contentRepoShim) TopMusicByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.MusicTrack, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.TopMusicByRegion(ctx, db, region, limit)
}

// TopTemplesByState proxies repo.TopTemplesByState.
func (s contentRepoShim) TopTemplesByState(ctx context.Context, db *gorm.DB, state string, limit int) ([]domain.Temple, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()
	return repo.TopTemplesByState(ctx, db, state, limit)
}

// App holds the assembled dependencies.
type App struct {
	Cfg config.Config
	DB  *gorm.DB
	KV  store.KV

	Cache      *cache.Store
	Engagement *engagement.Store

	Recommendations *services.RecommendationService
	Spiritual       *services.SpiritualContentService
	Panchangam      *services.PanchangamService
	Trending        *services.TrendingService
	Assistant       *services.AssistantService

	// Profile is the user context used by scheduled refreshes.
	Profile domain.UserContext

	Log zerolog.Logger

	closers []io.Closer
}

type options struct {
	gen textgen.Generator
	now func() time.Time
}

// Option customizes New.
type Option func(*options)

// WithGenerator overrides the text generator built from configuration.
func WithGenerator(g textgen.Generator) Option {
	return func(o *options) { o.gen = g }
}

// WithClock overrides the cache clock. By default the clock reads the
// current time in cfg.Location.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New opens the database and key/value store, migrates, optionally seeds
// the fallback dataset and builds the services.
func New(ctx context.Context, cfg config.Config, log zerolog.Logger, opts ...Option) (*App, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	o := options{now: func() time.Time { return time.Now().In(loc) }}
	for _, fn := range opts {
		fn(&o)
	}

	db, err := repo.OpenSQLite(cfg.DBPath, repo.WithBusyTimeout(cfg.RepoTimeout), repo.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	a := &App{Cfg: cfg, DB: db, Log: log}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB)
	}

	if cfg.SeedFallback {
		seeded, err := repo.Seed(ctx, db, repo.FallbackDataset())
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
		if seeded {
			log.Info().Msg("seeded empty content tables with the fallback dataset")
		}
	}

	kv, closer, err := store.Open(cfg.Cache.Backend, db, cfg.Cache.BadgerPath)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Cache.Backend, err)
	}
	// badger must close before the database handle
	a.closers = append([]io.Closer{closer}, a.closers...)
	a.KV = kv

	gen := o.gen
	if gen == nil {
		gen = newGenerator(cfg.AI, log)
	}

	a.Cache = cache.New(kv, cache.WithClock(o.now), cache.WithLogger(log))
	a.Engagement = engagement.New(kv, log)

	fallback := repo.FallbackDataset()
	shim := contentRepoShim{timeout: cfg.RepoTimeout}

	a.Recommendations = services.NewRecommendationService(db, shim, a.Cache, a.Engagement, &fallback, log)
	a.Recommendations.TTL = cfg.Cache.RecommendationTTL
	a.Spiritual = services.NewSpiritualContentService(gen, a.Cache, log)
	a.Spiritual.ListTTL = cfg.Cache.RecommendationTTL
	a.Panchangam = services.NewPanchangamService(a.Cache, log)
	a.Trending = services.NewTrendingService(db, shim, a.Cache, &fallback, log)
	a.Assistant = services.NewAssistantService(gen, log)

	a.Profile = domain.UserContext{
		Region:     domain.ParseRegion(cfg.Profile.Region),
		Language:   domain.ParseLanguage(cfg.Profile.Language),
		Deity:      domain.ParseDeity(cfg.Profile.Deity),
		ZodiacSign: services.NormalizeSign(cfg.Profile.ZodiacSign),
	}
	return a, nil
}

func newGenerator(cfg config.AIConfig, log zerolog.Logger) textgen.Generator {
	if !cfg.Enabled {
		log.Info().Msg("text generator disabled; serving curated content")
		return textgen.Disabled{}
	}
	return textgen.NewClient(textgen.Config{
		Endpoint:         cfg.Endpoint,
		APIKey:           cfg.APIKey,
		Model:            cfg.Model,
		Timeout:          cfg.Timeout,
		MaxTokens:        cfg.MaxTokens,
		Temperature:      cfg.Temperature,
		RateRPS:          cfg.RateRPS,
		RateBurst:        cfg.RateBurst,
		BreakerFailures:  cfg.BreakerFailures,
		BreakerOpenFor:   cfg.BreakerOpenFor,
		BreakerHalfOpen:  cfg.BreakerHalfOpen,
	}, textgen.WithLogger(log))
}

// Close releases the key/value store and the database.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// RefreshDaily sweeps outdated cache entries and regenerates the day's
// content for the default profile.
func (a *App) RefreshDaily(ctx context.Context) error {
	removed, err := a.Spiritual.ClearOldCache(ctx)
	if err != nil {
		return fmt.Errorf("sweep cache: %w", err)
	}
	p := a.Profile
	a.Spiritual.DailyMessage(ctx, string(p.Deity))
	a.Spiritual.DevotionalQuote(ctx, string(p.Deity))
	a.Spiritual.DailyGitaSloka(ctx, string(p.Language))
	a.Panchangam.Today(ctx)
	a.Recommendations.DailyBhajan(ctx, p)
	a.Recommendations.TempleOfTheDay(ctx, p.Region, p.Deity)
	a.Trending.Regional(ctx, p)
	a.Log.Debug().Int("swept", removed).Msg("daily content refreshed")
	return nil
}

// RefreshWeekly regenerates the weekly horoscope for the default profile.
func (a *App) RefreshWeekly(ctx context.Context) error {
	a.Spiritual.WeeklyHoroscope(ctx, a.Profile.ZodiacSign)
	return nil
}

// RefreshRecommendations warms the default profile's lists through the
// cache-first recommendation paths. Lists still inside their window are
// left as they are; expired ones are removed by the daily sweep.
func (a *App) RefreshRecommendations(ctx context.Context) error {
	p := a.Profile
	a.Recommendations.Posts(ctx, p, 0)
	a.Recommendations.Reels(ctx, p, 0)
	a.Recommendations.Music(ctx, p, 0)
	a.Recommendations.Temples(ctx, p, 0)
	return nil
}

// RefreshAll runs every refresh job and joins their errors.
func (a *App) RefreshAll(ctx context.Context) error {
	return errors.Join(
		a.RefreshDaily(ctx),
		a.RefreshWeekly(ctx),
		a.RefreshRecommendations(ctx),
	)
}
