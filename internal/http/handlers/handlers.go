// Package handlers exposes the feed's REST endpoints.
//
// Handlers are transport-thin: they parse the user context and query
// parameters, call application services, and translate results into HTTP
// responses. Read endpoints never fail because an upstream is down; the
// services degrade to fallback content on their own.
package handlers

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/services"
	"github.com/tbourn/bhakti-feed/internal/textgen"
)

//
// Service contracts (context-aware)
//

// RecommendationService ranks content for a user context.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type RecommendationService interface {
	Posts(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.PostItem]
	Reels(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.ReelItem]
	Music(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.MusicItem]
	Temples(ctx context.Context, uc domain.UserContext, limit int) []domain.ScoredItem[domain.TempleItem]
	// DailyBhajan returns today's top music pick, or nil when there is none.
	DailyBhajan(ctx context.Context, uc domain.UserContext) *domain.MusicItem
	// TempleOfTheDay returns today's top temple, or nil when there is none.
	TempleOfTheDay(ctx context.Context, region domain.Region, deity domain.Deity) *domain.TempleItem
	// RecordEngagement adds id to the engagement set of kind.
	RecordEngagement(ctx context.Context, kind domain.EngagementKind, id string) (bool, error)
}

// SpiritualService serves the daily and weekly devotional texts.
type SpiritualService interface {
	DailyMessage(ctx context.Context, deity string) string
	DevotionalQuote(ctx context.Context, deity string) string
	DevotionalQuotes(deity string) []string
	WeeklyHoroscope(ctx context.Context, sign string) string
	DailyGitaSloka(ctx context.Context, language string) domain.GitaSloka
	ClearOldCache(ctx context.Context) (int, error)
}

// PanchangamService serves today's calendar record.
type PanchangamService interface {
	Today(ctx context.Context) domain.Panchangam
}

// TrendingService serves regional trending content.
type TrendingService interface {
	Regional(ctx context.Context, uc domain.UserContext) services.TrendingContent
}

// AssistantService answers questions and suggests mantras.
type AssistantService interface {
	Ask(ctx context.Context, question string, history []textgen.Message) (services.Answer, error)
	KrishnaGuidance(ctx context.Context, question string) (services.Answer, error)
	SuggestMantra(deity, purpose string) string
}

// Refresher regenerates every cached artifact for the default profile.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

//
// Handler wiring
//

// Services bundles the dependencies of Handlers.
type Services struct {
	Recommendations RecommendationService
	Spiritual       SpiritualService
	Panchangam      PanchangamService
	Trending        TrendingService
	Assistant       AssistantService
	Refresher       Refresher
}

// Handlers groups HTTP endpoints for content, devotional texts, the
// assistant and cache administration.
type Handlers struct {
	recs      RecommendationService
	spiritual SpiritualService
	panch     PanchangamService
	trending  TrendingService
	assistant AssistantService
	refresher Refresher

	// profile fills user context fields a request leaves out.
	profile domain.UserContext
}

// New constructs a Handlers instance bound to the given services. profile
// supplies defaults for requests that omit region, language, deity or sign.
func New(s Services, profile domain.UserContext) *Handlers {
	return &Handlers{
		recs:      s.Recommendations,
		spiritual: s.Spiritual,
		panch:     s.Panchangam,
		trending:  s.Trending,
		assistant: s.Assistant,
		refresher: s.Refresher,
		profile:   profile,
	}
}

// userContext builds the request's user context from query parameters,
// falling back to the default profile per field.
func (h *Handlers) userContext(c *gin.Context) domain.UserContext {
	uc := h.profile
	if v := strings.TrimSpace(c.Query("region")); v != "" {
		uc.Region = domain.ParseRegion(v)
	}
	if v := strings.TrimSpace(c.Query("language")); v != "" {
		uc.Language = domain.ParseLanguage(v)
	}
	if v := strings.TrimSpace(c.Query("deity")); v != "" {
		uc.Deity = domain.ParseDeity(v)
	}
	if v := strings.TrimSpace(c.Query("zodiac")); v != "" {
		uc.ZodiacSign = services.NormalizeSign(v)
	}
	return uc
}

// queryOr returns the trimmed query value of key or def when absent.
func queryOr(c *gin.Context, key, def string) string {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		return v
	}
	return def
}
