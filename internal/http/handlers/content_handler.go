// Content HTTP handlers.
//
// This file exposes the personalized content endpoints:
//   - GET  /recommendations/{kind}   (ranked posts, reels, music or temples)
//   - GET  /daily/bhajan             (today's music pick)
//   - GET  /daily/temple             (temple of the day)
//   - GET  /trending                 (regional trending content)
//   - POST /engagement               (record a like, view or play)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/services"
	"github.com/tbourn/bhakti-feed/internal/utils"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

//
// DTOs
//

// RecommendationsResponse wraps a ranked list together with the context it
// was scored for. Items holds ScoredItem values of the requested kind.
type RecommendationsResponse struct {
	Kind    domain.Kind        `json:"kind" example:"posts"`
	Context domain.UserContext `json:"context"`
	Items   any                `json:"items"`
}

// EngagementRequest is the JSON payload for recording an engagement.
type EngagementRequest struct {
	// Kind is one of liked_posts, liked_reels, viewed_posts, viewed_reels, played_music.
	Kind string `json:"kind" example:"liked_posts"`
	// ID is the content item id.
	ID string `json:"id" example:"mock-post-1"`
}

//
// Handlers
//

// Recommendations godoc
// @ID          listRecommendations
// @Summary     Ranked recommendations
// @Description Returns content of one kind ranked for the user context. Lists are cached per context and limit.
// @Tags        Content
// @Produce     json
//
// @Param       kind      path   string  true  "Content kind"  Enums(posts, reels, music, temples)
// @Param       region    query  string  false "Region"        example(tamil_nadu)
// @Param       language  query  string  false "Language"      example(tamil)
// @Param       deity     query  string  false "Deity"         example(shiva)
// @Param       zodiac    query  string  false "Zodiac sign"   example(scorpio)
// @Param       limit     query  int     false "Max items"     minimum(1) maximum(50) default(10)
//
// @Success     200  {object}  handlers.RecommendationsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid kind"
// @Router      /recommendations/{kind} [get]
func (h *Handlers) Recommendations(c *gin.Context) {
	kind := domain.Kind(c.Param("kind"))
	uc := h.userContext(c)
	limit := utils.LimitParam(c.Query("limit"), defaultListLimit, maxListLimit)

	items, err := h.rank(c, kind, uc, limit)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeInvalidKind, "kind must be one of posts, reels, music, temples")
		return
	}
	ok(c, http.StatusOK, RecommendationsResponse{Kind: kind, Context: uc, Items: items})
}

func (h *Handlers) rank(c *gin.Context, kind domain.Kind, uc domain.UserContext, limit int) (any, error) {
	ctx := c.Request.Context()
	switch kind {
	case domain.KindPosts:
		return h.recs.Posts(ctx, uc, limit), nil
	case domain.KindReels:
		return h.recs.Reels(ctx, uc, limit), nil
	case domain.KindMusic:
		return h.recs.Music(ctx, uc, limit), nil
	case domain.KindTemples:
		return h.recs.Temples(ctx, uc, limit), nil
	}
	return nil, services.ErrInvalidKind
}

// DailyBhajan godoc
// @ID          dailyBhajan
// @Summary     Bhajan of the day
// @Description Returns today's top-ranked music track for the user context.
// @Tags        Daily
// @Produce     json
//
// @Param       region    query  string  false "Region"
// @Param       language  query  string  false "Language"
// @Param       deity     query  string  false "Deity"
// @Param       zodiac    query  string  false "Zodiac sign"
//
// @Success     200  {object}  domain.MusicItem
// @Failure     404  {object}  handlers.ErrorResponse  "No music available"
// @Router      /daily/bhajan [get]
func (h *Handlers) DailyBhajan(c *gin.Context) {
	item := h.recs.DailyBhajan(c.Request.Context(), h.userContext(c))
	if item == nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no bhajan available")
		return
	}
	ok(c, http.StatusOK, item)
}

// TempleOfTheDay godoc
// @ID          templeOfTheDay
// @Summary     Temple of the day
// @Description Returns today's top-ranked temple for the region and deity.
// @Tags        Daily
// @Produce     json
//
// @Param       region  query  string  false "Region"
// @Param       deity   query  string  false "Deity"
//
// @Success     200  {object}  domain.TempleItem
// @Failure     404  {object}  handlers.ErrorResponse  "No temple available"
// @Router      /daily/temple [get]
func (h *Handlers) TempleOfTheDay(c *gin.Context) {
	uc := h.userContext(c)
	item := h.recs.TempleOfTheDay(c.Request.Context(), uc.Region, uc.Deity)
	if item == nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "no temple available")
		return
	}
	ok(c, http.StatusOK, item)
}

// Trending godoc
// @ID          trending
// @Summary     Regional trending content
// @Description Returns the most popular music, posts, reels and temples for the region.
// @Tags        Content
// @Produce     json
//
// @Param       region    query  string  false "Region"
// @Param       language  query  string  false "Language"
// @Param       deity     query  string  false "Deity"
//
// @Success     200  {object}  services.TrendingContent
// @Router      /trending [get]
func (h *Handlers) Trending(c *gin.Context) {
	ok(c, http.StatusOK, h.trending.Regional(c.Request.Context(), h.userContext(c)))
}

// RecordEngagement godoc
// @ID          recordEngagement
// @Summary     Record an engagement
// @Description Adds an item id to one of the engagement sets used for scoring. Recording a known id is a no-op.
// @Tags        Content
// @Accept      json
//
// @Param       body  body  handlers.EngagementRequest  true  "Engagement"
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid engagement"
// @Failure     500  {object}  handlers.ErrorResponse  "Store failure"
// @Router      /engagement [post]
func (h *Handlers) RecordEngagement(c *gin.Context) {
	var req EngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	_, err := h.recs.RecordEngagement(c.Request.Context(), domain.EngagementKind(req.Kind), req.ID)
	switch {
	case errors.Is(err, services.ErrInvalidEngagement):
		fail(c, http.StatusBadRequest, ErrCodeInvalidEngagement, err.Error())
		return
	case err != nil:
		fail(c, http.StatusInternalServerError, ErrCodeEngagementFailed, err.Error())
		return
	}
	noContent(c)
}
