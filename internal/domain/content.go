// Package domain defines the persistence models for devotional content
// (posts, reels, music tracks, temples) together with the canonical item
// views, user context and engagement types consumed by the scorer and the
// recommendation services.
package domain

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Region is an Indian state identifier, or "other".
type Region string

// Language is a content language identifier, or "other".
type Language string

// Deity is a devotional focus (Ishta Devata), or "other".
type Deity string

const (
	RegionTamilNadu      Region = "tamil_nadu"
	RegionAndhraPradesh  Region = "andhra_pradesh"
	RegionTelangana      Region = "telangana"
	RegionKarnataka      Region = "karnataka"
	RegionKerala         Region = "kerala"
	RegionMaharashtra    Region = "maharashtra"
	RegionGujarat        Region = "gujarat"
	RegionWestBengal     Region = "west_bengal"
	RegionUttarPradesh   Region = "uttar_pradesh"
	RegionRajasthan      Region = "rajasthan"
	RegionMadhyaPradesh  Region = "madhya_pradesh"
	RegionBihar          Region = "bihar"
	RegionOdisha         Region = "odisha"
	RegionPunjab         Region = "punjab"
	RegionHaryana        Region = "haryana"
	RegionOther          Region = "other"
)

const (
	LanguageTamil     Language = "tamil"
	LanguageTelugu    Language = "telugu"
	LanguageKannada   Language = "kannada"
	LanguageMalayalam Language = "malayalam"
	LanguageMarathi   Language = "marathi"
	LanguageGujarati  Language = "gujarati"
	LanguageBengali   Language = "bengali"
	LanguageHindi     Language = "hindi"
	LanguagePunjabi   Language = "punjabi"
	LanguageOdia      Language = "odia"
	LanguageOther     Language = "other"
)

const (
	DeityShiva     Deity = "shiva"
	DeityVishnu    Deity = "vishnu"
	DeityKrishna   Deity = "krishna"
	DeityGanesh    Deity = "ganesh"
	DeityMurugan   Deity = "murugan"
	DeityDurga     Deity = "durga"
	DeityLakshmi   Deity = "lakshmi"
	DeitySaraswati Deity = "saraswati"
	DeityHanuman   Deity = "hanuman"
	DeityRama      Deity = "rama"
	DeityOther     Deity = "other"
)

var (
	regions = map[Region]struct{}{
		RegionTamilNadu: {}, RegionAndhraPradesh: {}, RegionTelangana: {}, RegionKarnataka: {},
		RegionKerala: {}, RegionMaharashtra: {}, RegionGujarat: {}, RegionWestBengal: {},
		RegionUttarPradesh: {}, RegionRajasthan: {}, RegionMadhyaPradesh: {}, RegionBihar: {},
		RegionOdisha: {}, RegionPunjab: {}, RegionHaryana: {}, RegionOther: {},
	}
	languages = map[Language]struct{}{
		LanguageTamil: {}, LanguageTelugu: {}, LanguageKannada: {}, LanguageMalayalam: {},
		LanguageMarathi: {}, LanguageGujarati: {}, LanguageBengali: {}, LanguageHindi: {},
		LanguagePunjabi: {}, LanguageOdia: {}, LanguageOther: {},
	}
	deities = map[Deity]struct{}{
		DeityShiva: {}, DeityVishnu: {}, DeityKrishna: {}, DeityGanesh: {}, DeityMurugan: {},
		DeityDurga: {}, DeityLakshmi: {}, DeitySaraswati: {}, DeityHanuman: {}, DeityRama: {},
		DeityOther: {},
	}
)

func canon(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}

// ParseRegion maps free-form input onto a known Region; unknown values become RegionOther.
func ParseRegion(s string) Region {
	r := Region(canon(s))
	if _, ok := regions[r]; ok {
		return r
	}
	return RegionOther
}

// ParseLanguage maps free-form input onto a known Language; unknown values become LanguageOther.
func ParseLanguage(s string) Language {
	l := Language(canon(s))
	if _, ok := languages[l]; ok {
		return l
	}
	return LanguageOther
}

// ParseDeity maps free-form input onto a known Deity; unknown values become DeityOther.
func ParseDeity(s string) Deity {
	d := Deity(canon(s))
	if _, ok := deities[d]; ok {
		return d
	}
	return DeityOther
}

// Post is a row of the posts table.
type Post struct {
	ID            string     `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID        string     `json:"user_id"        gorm:"type:varchar(64);index"`
	Caption       string     `json:"caption"        gorm:"type:text"`
	MediaURL      string     `json:"media_url"      gorm:"type:text"`
	MediaType     string     `json:"media_type"     gorm:"type:varchar(16)"`
	Region        string     `json:"region"         gorm:"type:varchar(32);index"`
	Language      string     `json:"language"       gorm:"type:varchar(32)"`
	Deity         string     `json:"deity"          gorm:"type:varchar(32)"`
	LikesCount    *int64     `json:"likes_count"`
	CommentsCount *int64     `json:"comments_count"`
	SharesCount   *int64     `json:"shares_count"`
	CreatedAt     *time.Time `json:"created_at"     gorm:"index;autoCreateTime:false"`
}

// TableName returns the database table name for Post.
func (Post) TableName() string { return "posts" }

// Reel is a row of the reels table.
type Reel struct {
	ID            string     `json:"id"             gorm:"type:char(36);primaryKey"`
	UserID        string     `json:"user_id"        gorm:"type:varchar(64);index"`
	Caption       string     `json:"caption"        gorm:"type:text"`
	VideoURL      string     `json:"video_url"      gorm:"type:text"`
	ThumbnailURL  string     `json:"thumbnail_url"  gorm:"type:text"`
	MusicID       string     `json:"music_id"       gorm:"type:char(36)"`
	Region        string     `json:"region"         gorm:"type:varchar(32);index"`
	Language      string     `json:"language"       gorm:"type:varchar(32)"`
	Deity         string     `json:"deity"          gorm:"type:varchar(32)"`
	LikesCount    *int64     `json:"likes_count"`
	CommentsCount *int64     `json:"comments_count"`
	ViewsCount    *int64     `json:"views_count"`
	CreatedAt     *time.Time `json:"created_at"     gorm:"index;autoCreateTime:false"`
}

// TableName returns the database table name for Reel.
func (Reel) TableName() string { return "reels" }

// MusicTrack is a row of the music_tracks table.
type MusicTrack struct {
	ID        string     `json:"id"         gorm:"type:char(36);primaryKey"`
	Title     string     `json:"title"      gorm:"type:varchar(255);not null"`
	Artist    string     `json:"artist"     gorm:"type:varchar(255)"`
	Category  string     `json:"category"   gorm:"type:varchar(32)"`
	CoverURL  string     `json:"cover_url"  gorm:"type:text"`
	FileURL   string     `json:"file_url"   gorm:"type:text"`
	Duration  int        `json:"duration"`
	Region    string     `json:"region"     gorm:"type:varchar(32);index"`
	Language  string     `json:"language"   gorm:"type:varchar(32)"`
	Deity     string     `json:"deity"      gorm:"type:varchar(32)"`
	PlayCount *int64     `json:"play_count"`
	CreatedAt *time.Time `json:"created_at" gorm:"index;autoCreateTime:false"`
}

// TableName returns the database table name for MusicTrack.
func (MusicTrack) TableName() string { return "music_tracks" }

// Temple is a row of the temples table. Festivals and images are stored as
// JSON arrays; aarti timings as an arbitrary JSON document.
type Temple struct {
	ID             string                      `json:"id"              gorm:"type:char(36);primaryKey"`
	Name           string                      `json:"name"            gorm:"type:varchar(255);not null"`
	Description    string                      `json:"description"     gorm:"type:text"`
	Address        string                      `json:"address"         gorm:"type:text"`
	District       string                      `json:"district"        gorm:"type:varchar(128)"`
	State          string                      `json:"state"           gorm:"type:varchar(32);index"`
	Deity          string                      `json:"deity"           gorm:"type:varchar(32)"`
	Festivals      datatypes.JSONSlice[string] `json:"festivals"`
	Images         datatypes.JSONSlice[string] `json:"images"`
	AartiTimings   datatypes.JSON              `json:"aarti_timings"`
	FollowersCount *int64                      `json:"followers_count"`
	CreatedAt      *time.Time                  `json:"created_at"      gorm:"index;autoCreateTime:false"`
}

// TableName returns the database table name for Temple.
func (Temple) TableName() string { return "temples" }
