// Devotional content handlers: daily message, quote and Gita sloka, the
// weekly horoscope, the panchangam, curated quotes, mantras and the
// meditation plan.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/meditation"
	"github.com/tbourn/bhakti-feed/internal/services"
)

// TextResponse carries a single generated or curated text.
type TextResponse struct {
	Text string `json:"text" example:"May the grace of Shiva guide you today."`
}

// HoroscopeResponse is the weekly horoscope of one sign.
type HoroscopeResponse struct {
	Sign string `json:"sign" example:"scorpio"`
	Text string `json:"text"`
}

// QuotesResponse lists the curated quotes of a deity.
type QuotesResponse struct {
	Deity  domain.Deity `json:"deity" example:"shiva"`
	Quotes []string     `json:"quotes"`
}

// MantraResponse is a suggested mantra.
type MantraResponse struct {
	Deity   domain.Deity `json:"deity" example:"ganesh"`
	Purpose string       `json:"purpose" example:"obstacles"`
	Mantra  string       `json:"mantra"`
}

// MeditationPlanResponse is the guided meditation phase table.
type MeditationPlanResponse struct {
	TotalSeconds int                `json:"total_seconds" example:"720"`
	Phases       []meditation.Phase `json:"phases"`
}

// deity returns the deity query parameter or the profile deity.
func (h *Handlers) deity(c *gin.Context) domain.Deity {
	if v := queryOr(c, "deity", ""); v != "" {
		return domain.ParseDeity(v)
	}
	return h.profile.Deity
}

// DailyMessage godoc
// @ID          dailyMessage
// @Summary     Daily spiritual message
// @Description Returns today's message for the deity; generated once per day, curated when generation is unavailable.
// @Tags        Daily
// @Produce     json
// @Param       deity  query  string  false "Deity"  example(shiva)
// @Success     200  {object}  handlers.TextResponse
// @Router      /daily/message [get]
func (h *Handlers) DailyMessage(c *gin.Context) {
	ok(c, http.StatusOK, TextResponse{Text: h.spiritual.DailyMessage(c.Request.Context(), string(h.deity(c)))})
}

// DailyQuote godoc
// @ID          dailyQuote
// @Summary     Daily devotional quote
// @Tags        Daily
// @Produce     json
// @Param       deity  query  string  false "Deity"  example(krishna)
// @Success     200  {object}  handlers.TextResponse
// @Router      /daily/quote [get]
func (h *Handlers) DailyQuote(c *gin.Context) {
	ok(c, http.StatusOK, TextResponse{Text: h.spiritual.DevotionalQuote(c.Request.Context(), string(h.deity(c)))})
}

// DailyGita godoc
// @ID          dailyGita
// @Summary     Gita sloka of the day
// @Description Returns the day's Bhagavad Gita verse in english, hindi, telugu or sanskrit.
// @Tags        Daily
// @Produce     json
// @Param       language  query  string  false "Language"  Enums(english, hindi, telugu, sanskrit) default(english)
// @Success     200  {object}  domain.GitaSloka
// @Router      /daily/gita [get]
func (h *Handlers) DailyGita(c *gin.Context) {
	ok(c, http.StatusOK, h.spiritual.DailyGitaSloka(c.Request.Context(), queryOr(c, "language", "english")))
}

// WeeklyHoroscope godoc
// @ID          weeklyHoroscope
// @Summary     Weekly horoscope
// @Description Returns this week's horoscope; unknown signs are read as leo.
// @Tags        Daily
// @Produce     json
// @Param       sign  query  string  false "Zodiac sign"  example(scorpio)
// @Success     200  {object}  handlers.HoroscopeResponse
// @Router      /horoscope/weekly [get]
func (h *Handlers) WeeklyHoroscope(c *gin.Context) {
	sign := h.userContext(c).ZodiacSign
	if v := queryOr(c, "sign", ""); v != "" {
		sign = v
	}
	text := h.spiritual.WeeklyHoroscope(c.Request.Context(), sign)
	ok(c, http.StatusOK, HoroscopeResponse{Sign: services.NormalizeSign(sign), Text: text})
}

// Panchangam godoc
// @ID          panchangamToday
// @Summary     Today's panchangam
// @Tags        Calendar
// @Produce     json
// @Success     200  {object}  domain.Panchangam
// @Router      /panchangam/today [get]
func (h *Handlers) Panchangam(c *gin.Context) {
	ok(c, http.StatusOK, h.panch.Today(c.Request.Context()))
}

// Quotes godoc
// @ID          listQuotes
// @Summary     Curated quotes for a deity
// @Tags        Daily
// @Produce     json
// @Param       deity  query  string  false "Deity"
// @Success     200  {object}  handlers.QuotesResponse
// @Router      /quotes [get]
func (h *Handlers) Quotes(c *gin.Context) {
	d := h.deity(c)
	ok(c, http.StatusOK, QuotesResponse{Deity: d, Quotes: h.spiritual.DevotionalQuotes(string(d))})
}

// Mantra godoc
// @ID          suggestMantra
// @Summary     Suggest a mantra
// @Tags        Assistant
// @Produce     json
// @Param       deity    query  string  false "Deity"    example(ganesh)
// @Param       purpose  query  string  false "Purpose"  example(obstacles) default(general)
// @Success     200  {object}  handlers.MantraResponse
// @Router      /mantra [get]
func (h *Handlers) Mantra(c *gin.Context) {
	d := h.deity(c)
	purpose := queryOr(c, "purpose", "general")
	ok(c, http.StatusOK, MantraResponse{Deity: d, Purpose: purpose, Mantra: h.assistant.SuggestMantra(string(d), purpose)})
}

// MeditationPlan godoc
// @ID          meditationPlan
// @Summary     Guided meditation phases
// @Tags        Meditation
// @Produce     json
// @Success     200  {object}  handlers.MeditationPlanResponse
// @Router      /meditation/plan [get]
func (h *Handlers) MeditationPlan(c *gin.Context) {
	ok(c, http.StatusOK, MeditationPlanResponse{TotalSeconds: meditation.TotalSeconds(), Phases: meditation.Plan()})
}
