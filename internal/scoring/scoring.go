// Package scoring assigns deterministic, explainable relevance scores to
// content items for a given user context. Scores are additive; each
// applied bonus appends a reason, in evaluation order.
package scoring

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

// Weights. Downstream ordering depends on these exact values.
const (
	postRegion    = 30
	postLanguage  = 20
	postDeity     = 25
	postLiked     = 15
	postPopCap    = 10
	postPopDiv    = 100
	postPopular   = 1000
	postDayBonus  = 5
	postWeekBonus = 3
	postTrend     = 5
	postTrendMin  = 500

	reelRegion    = 30
	reelDeity     = 25
	reelLiked     = 20
	reelViewed    = -10
	reelPopCap    = 15
	reelPopDiv    = 1000
	reelViral     = 10000
	reelEngaging  = 10
	reelLikeRatio = 5 // percent
	reelDayBonus  = 5

	musicDeity    = 40
	musicRegion   = 25
	musicLanguage = 20
	musicTimeOf   = 15
	musicNew      = 10
	musicPlayed   = -5
	musicPopCap   = 10
	musicPopDiv   = 50000
	musicPopular  = 500000
	musicZodiac   = 5

	templeState    = 50
	templeDeity    = 30
	templeFestival = 20
	templePopCap   = 10
	templePopDiv   = 10000
	templePopular  = 50000
)

// missingAge is the age assumed for items without a creation time.
const missingAge = 30 * 24 * time.Hour

// matches reports whether a context value selects an item value. Unset and
// "other" context values never match.
func matches(ctx, item string) bool {
	if ctx == "" || ctx == "other" {
		return false
	}
	return ctx == item
}

func isLeo(sign string) bool {
	return strings.EqualFold(strings.TrimSpace(sign), "leo")
}

func popularity(n int64, div, cap float64) float64 {
	return math.Min(float64(n)/div, cap)
}

func age(createdAt *time.Time, now time.Time) time.Duration {
	if createdAt == nil {
		return missingAge
	}
	return now.Sub(*createdAt)
}

// ScorePost scores a post.
func ScorePost(p domain.PostItem, uc domain.UserContext, e domain.UserEngagement, now time.Time) domain.ScoredItem[domain.PostItem] {
	var score float64
	reasons := []string{}

	if matches(string(uc.Region), string(p.Region)) {
		score += postRegion
		reasons = append(reasons, "From your region")
	}
	if matches(string(uc.Language), string(p.Language)) {
		score += postLanguage
		reasons = append(reasons, "In your language")
	}
	if matches(string(uc.Deity), string(p.Deity)) {
		score += postDeity
		reasons = append(reasons, "Related to "+string(uc.Deity))
	}
	if e.LikedPosts.Has(p.ID) {
		score += postLiked
		reasons = append(reasons, "You liked this")
	}

	score += popularity(p.Likes, postPopDiv, postPopCap)
	if p.Likes > postPopular {
		reasons = append(reasons, "Popular")
	}

	// The two recency bonuses stack.
	a := age(p.CreatedAt, now)
	if a < 24*time.Hour {
		score += postDayBonus
	}
	if a < 7*24*time.Hour {
		score += postWeekBonus
	}

	if isLeo(uc.ZodiacSign) && p.Likes > postTrendMin {
		score += postTrend
		reasons = append(reasons, "Trending")
	}

	return domain.ScoredItem[domain.PostItem]{Item: p, Score: score, Reasons: reasons}
}

// ScoreReel scores a reel. Already viewed reels are penalized.
func ScoreReel(r domain.ReelItem, uc domain.UserContext, e domain.UserEngagement, now time.Time) domain.ScoredItem[domain.ReelItem] {
	var score float64
	reasons := []string{}

	if matches(string(uc.Region), string(r.Region)) {
		score += reelRegion
		reasons = append(reasons, "Regional content")
	}
	if matches(string(uc.Deity), string(r.Deity)) {
		score += reelDeity
		reasons = append(reasons, "Devotional: "+string(uc.Deity))
	}
	if e.LikedReels.Has(r.ID) {
		score += reelLiked
		reasons = append(reasons, "You liked this")
	}
	if e.ViewedReels.Has(r.ID) {
		score += reelViewed
	}

	score += popularity(r.Views, reelPopDiv, reelPopCap)
	if r.Views > reelViral {
		reasons = append(reasons, "Viral")
	}

	if r.Views > 0 && float64(r.Likes)/float64(r.Views)*100 > reelLikeRatio {
		score += reelEngaging
		reasons = append(reasons, "Highly engaging")
	}

	if age(r.CreatedAt, now) < 24*time.Hour {
		score += reelDayBonus
	}

	return domain.ScoredItem[domain.ReelItem]{Item: r, Score: score, Reasons: reasons}
}

// ScoreMusic scores a music track. The hour of now drives the morning
// aarti and evening bhajan bonuses.
func ScoreMusic(m domain.MusicItem, uc domain.UserContext, e domain.UserEngagement, now time.Time) domain.ScoredItem[domain.MusicItem] {
	var score float64
	reasons := []string{}

	if matches(string(uc.Deity), string(m.Deity)) {
		score += musicDeity
		reasons = append(reasons, "Your deity: "+string(uc.Deity))
	}
	if matches(string(uc.Region), string(m.Region)) {
		score += musicRegion
		reasons = append(reasons, "Regional music")
	}
	if matches(string(uc.Language), string(m.Language)) {
		score += musicLanguage
		reasons = append(reasons, "In your language")
	}

	title := strings.ToLower(m.Title)
	category := strings.ToLower(m.Category)
	hour := now.Hour()
	if hour < 12 && (category == "aarti" || strings.Contains(title, "aarti")) {
		score += musicTimeOf
		reasons = append(reasons, "Morning aarti")
	}
	if hour >= 18 && (category == "bhajan" || strings.Contains(title, "bhajan")) {
		score += musicTimeOf
		reasons = append(reasons, "Evening bhajan")
	}

	if !e.PlayedMusic.Has(m.ID) {
		score += musicNew
		reasons = append(reasons, "New for you")
	} else {
		score += musicPlayed
	}

	score += popularity(m.Plays, musicPopDiv, musicPopCap)
	if m.Plays > musicPopular {
		reasons = append(reasons, "Popular")
	}

	if isLeo(uc.ZodiacSign) && (strings.Contains(title, "power") || strings.Contains(title, "victory")) {
		score += musicZodiac
	}

	return domain.ScoredItem[domain.MusicItem]{Item: m, Score: score, Reasons: reasons}
}

// ScoreTemple scores a temple. Engagement and time do not apply.
func ScoreTemple(t domain.TempleItem, uc domain.UserContext) domain.ScoredItem[domain.TempleItem] {
	var score float64
	reasons := []string{}

	if matches(string(uc.Region), string(t.State)) {
		score += templeState
		reasons = append(reasons, "In your state")
	}
	if matches(string(uc.Deity), string(t.Deity)) {
		score += templeDeity
		reasons = append(reasons, "Temple of "+string(uc.Deity))
	}
	if festivalSeason(t.Festivals) {
		score += templeFestival
		reasons = append(reasons, "Festival season")
	}

	score += popularity(t.Followers, templePopDiv, templePopCap)
	if t.Followers > templePopular {
		reasons = append(reasons, "Popular temple")
	}

	return domain.ScoredItem[domain.TempleItem]{Item: t, Score: score, Reasons: reasons}
}

func festivalSeason(festivals []string) bool {
	for _, f := range festivals {
		f = strings.ToLower(f)
		if strings.Contains(f, "maha") || strings.Contains(f, "navratri") {
			return true
		}
	}
	return false
}

// Rank sorts scored items by descending score and keeps the first limit.
// Equal scores keep their input order. A non-positive limit yields an
// empty, non-nil slice.
func Rank[T any](scored []domain.ScoredItem[T], limit int) []domain.ScoredItem[T] {
	out := make([]domain.ScoredItem[T], len(scored))
	copy(out, scored)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit < 0 {
		limit = 0
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

// ScoreAll applies score to every item, preserving order.
func ScoreAll[T any](items []T, score func(T) domain.ScoredItem[T]) []domain.ScoredItem[T] {
	out := make([]domain.ScoredItem[T], 0, len(items))
	for _, it := range items {
		out = append(out, score(it))
	}
	return out
}
