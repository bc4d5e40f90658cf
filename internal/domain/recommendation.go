package domain

import (
	"sort"
	"time"

	"github.com/goccy/go-json"
)

// Kind identifies one of the four content collections.
type Kind string

const (
	KindPosts   Kind = "posts"
	KindReels   Kind = "reels"
	KindMusic   Kind = "music"
	KindTemples Kind = "temples"
)

// Valid reports whether k names a known collection.
func (k Kind) Valid() bool {
	switch k {
	case KindPosts, KindReels, KindMusic, KindTemples:
		return true
	}
	return false
}

// UserContext carries the personalization inputs for scoring. Empty or
// "other" values never award a match bonus.
type UserContext struct {
	Region     Region   `json:"region"`
	Language   Language `json:"language"`
	Deity      Deity    `json:"deity"`
	ZodiacSign string   `json:"zodiac_sign"`
}

// PostItem is the canonical post shape seen by the scorer and returned to clients.
type PostItem struct {
	ID        string     `json:"id"`
	Caption   string     `json:"caption"`
	MediaURL  string     `json:"media_url"`
	Likes     int64      `json:"likes"`
	Comments  int64      `json:"comments"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Region    Region     `json:"region"`
	Language  Language   `json:"language"`
	Deity     Deity      `json:"deity"`
}

// ReelItem is the canonical reel shape.
type ReelItem struct {
	ID        string     `json:"id"`
	Caption   string     `json:"caption"`
	Thumbnail string     `json:"thumbnail"`
	VideoURL  string     `json:"video_url"`
	Views     int64      `json:"views"`
	Likes     int64      `json:"likes"`
	MusicID   string     `json:"music_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Region    Region     `json:"region"`
	Language  Language   `json:"language"`
	Deity     Deity      `json:"deity"`
}

// MusicItem is the canonical music track shape.
type MusicItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Artist   string   `json:"artist"`
	Category string   `json:"category,omitempty"`
	CoverURL string   `json:"cover_url"`
	FileURL  string   `json:"file_url,omitempty"`
	Duration int      `json:"duration"`
	Plays    int64    `json:"plays"`
	Region   Region   `json:"region"`
	Language Language `json:"language"`
	Deity    Deity    `json:"deity"`
}

// TempleItem is the canonical temple shape. Location is the address, or
// "district, state" when no address is known; Image is the first image.
type TempleItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Followers   int64    `json:"followers"`
	Deity       Deity    `json:"deity"`
	State       Region   `json:"state"`
	Description string   `json:"description"`
	Festivals   []string `json:"festivals,omitempty"`
}

// ScoredItem pairs an item with its relevance score and the ordered reasons
// that produced it. Reasons is never nil.
type ScoredItem[T any] struct {
	Item    T        `json:"item"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// IDSet is a set of content ids serialized as a sorted JSON array.
type IDSet map[string]struct{}

// Has reports whether id is in the set. A nil set is empty.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in ascending order.
func (s IDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IDSet) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	*s = set
	return nil
}

// EngagementKind names one of the engagement sets.
type EngagementKind string

const (
	LikedPosts  EngagementKind = "liked_posts"
	LikedReels  EngagementKind = "liked_reels"
	ViewedPosts EngagementKind = "viewed_posts"
	ViewedReels EngagementKind = "viewed_reels"
	PlayedMusic EngagementKind = "played_music"
)

// EngagementKinds lists every engagement set in a fixed order.
var EngagementKinds = []EngagementKind{LikedPosts, LikedReels, ViewedPosts, ViewedReels, PlayedMusic}

// Valid reports whether k names a known engagement set.
func (k EngagementKind) Valid() bool {
	for _, v := range EngagementKinds {
		if v == k {
			return true
		}
	}
	return false
}

// UserEngagement records the user's likes, views and plays.
type UserEngagement struct {
	LikedPosts  IDSet `json:"liked_posts"`
	LikedReels  IDSet `json:"liked_reels"`
	ViewedPosts IDSet `json:"viewed_posts"`
	ViewedReels IDSet `json:"viewed_reels"`
	PlayedMusic IDSet `json:"played_music"`
}

// NewUserEngagement returns an engagement record with every set allocated.
func NewUserEngagement() UserEngagement {
	return UserEngagement{
		LikedPosts:  IDSet{},
		LikedReels:  IDSet{},
		ViewedPosts: IDSet{},
		ViewedReels: IDSet{},
		PlayedMusic: IDSet{},
	}
}

// Set returns the set for kind k, or nil for an unknown kind.
func (e *UserEngagement) Set(k EngagementKind) IDSet {
	switch k {
	case LikedPosts:
		return e.LikedPosts
	case LikedReels:
		return e.LikedReels
	case ViewedPosts:
		return e.ViewedPosts
	case ViewedReels:
		return e.ViewedReels
	case PlayedMusic:
		return e.PlayedMusic
	}
	return nil
}
