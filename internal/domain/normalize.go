package domain

import "strings"

// Dataset is a set of raw content rows, used for the built-in fallback
// content and for seeding.
type Dataset struct {
	Posts   []Post
	Reels   []Reel
	Music   []MusicTrack
	Temples []Temple
}

func count(n *int64) int64 {
	if n == nil || *n < 0 {
		return 0
	}
	return *n
}

// Item maps a post row onto its canonical shape. Missing counters become 0;
// enum columns are normalized.
func (p Post) Item() PostItem {
	return PostItem{
		ID:        p.ID,
		Caption:   p.Caption,
		MediaURL:  p.MediaURL,
		Likes:     count(p.LikesCount),
		Comments:  count(p.CommentsCount),
		CreatedAt: p.CreatedAt,
		Region:    ParseRegion(p.Region),
		Language:  ParseLanguage(p.Language),
		Deity:     ParseDeity(p.Deity),
	}
}

// Item maps a reel row onto its canonical shape.
func (r Reel) Item() ReelItem {
	return ReelItem{
		ID:        r.ID,
		Caption:   r.Caption,
		Thumbnail: r.ThumbnailURL,
		VideoURL:  r.VideoURL,
		Views:     count(r.ViewsCount),
		Likes:     count(r.LikesCount),
		MusicID:   r.MusicID,
		CreatedAt: r.CreatedAt,
		Region:    ParseRegion(r.Region),
		Language:  ParseLanguage(r.Language),
		Deity:     ParseDeity(r.Deity),
	}
}

// Item maps a music track row onto its canonical shape.
func (m MusicTrack) Item() MusicItem {
	return MusicItem{
		ID:       m.ID,
		Title:    m.Title,
		Artist:   m.Artist,
		Category: strings.ToLower(strings.TrimSpace(m.Category)),
		CoverURL: m.CoverURL,
		FileURL:  m.FileURL,
		Duration: m.Duration,
		Plays:    count(m.PlayCount),
		Region:   ParseRegion(m.Region),
		Language: ParseLanguage(m.Language),
		Deity:    ParseDeity(m.Deity),
	}
}

// Item maps a temple row onto its canonical shape. Location falls back to
// "district, state" when no address is stored.
func (t Temple) Item() TempleItem {
	loc := strings.TrimSpace(t.Address)
	if loc == "" {
		loc = t.District + ", " + t.State
	}
	var img string
	if len(t.Images) > 0 {
		img = t.Images[0]
	}
	return TempleItem{
		ID:          t.ID,
		Name:        t.Name,
		Location:    loc,
		Image:       img,
		Followers:   count(t.FollowersCount),
		Deity:       ParseDeity(t.Deity),
		State:       ParseRegion(t.State),
		Description: t.Description,
		Festivals:   append([]string(nil), t.Festivals...),
	}
}

// PostItems normalizes a slice of rows.
func PostItems(rows []Post) []PostItem {
	out := make([]PostItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Item())
	}
	return out
}

// ReelItems normalizes a slice of rows.
func ReelItems(rows []Reel) []ReelItem {
	out := make([]ReelItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Item())
	}
	return out
}

// MusicItems normalizes a slice of rows.
func MusicItems(rows []MusicTrack) []MusicItem {
	out := make([]MusicItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Item())
	}
	return out
}

// TempleItems normalizes a slice of rows.
func TempleItems(rows []Temple) []TempleItem {
	out := make([]TempleItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Item())
	}
	return out
}
