package domain

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		Post{}.TableName():       "posts",
		Reel{}.TableName():       "reels",
		MusicTrack{}.TableName(): "music_tracks",
		Temple{}.TableName():     "temples",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if got := ParseRegion(" Tamil Nadu "); got != RegionTamilNadu {
		t.Fatalf("ParseRegion = %q", got)
	}
	if got := ParseRegion("atlantis"); got != RegionOther {
		t.Fatalf("unknown region should be other, got %q", got)
	}
	if got := ParseLanguage("HINDI"); got != LanguageHindi {
		t.Fatalf("ParseLanguage = %q", got)
	}
	if got := ParseLanguage(""); got != LanguageOther {
		t.Fatalf("empty language should be other, got %q", got)
	}
	if got := ParseDeity("Krishna"); got != DeityKrishna {
		t.Fatalf("ParseDeity = %q", got)
	}
	if got := ParseDeity("zeus"); got != DeityOther {
		t.Fatalf("unknown deity should be other, got %q", got)
	}
}

func TestKindValid(t *testing.T) {
	for _, k := range []Kind{KindPosts, KindReels, KindMusic, KindTemples} {
		if !k.Valid() {
			t.Fatalf("%q should be valid", k)
		}
	}
	if Kind("stories").Valid() {
		t.Fatalf("unknown kind should be invalid")
	}
}

func TestIDSet_JSONIsSortedArray(t *testing.T) {
	s := IDSet{"b": {}, "a": {}, "c": {}}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["a","b","c"]` {
		t.Fatalf("got %s", b)
	}

	var back IDSet
	if err := json.Unmarshal([]byte(`["x","x","y"]`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 || !back.Has("x") || !back.Has("y") {
		t.Fatalf("unexpected set: %v", back)
	}
}

func TestUserEngagement_Set(t *testing.T) {
	e := NewUserEngagement()
	for _, k := range EngagementKinds {
		if e.Set(k) == nil {
			t.Fatalf("set for %q should be allocated", k)
		}
		if !k.Valid() {
			t.Fatalf("%q should be valid", k)
		}
	}
	if e.Set("shared_posts") != nil {
		t.Fatalf("unknown kind should return nil")
	}
	var zero UserEngagement
	if zero.LikedPosts.Has("p1") {
		t.Fatalf("nil set must report empty")
	}
}

func TestItem_Normalization(t *testing.T) {
	likes := int64(12)
	neg := int64(-4)
	p := Post{ID: "p", Region: "Kerala", Language: "klingon", LikesCount: &likes, CommentsCount: &neg}
	it := p.Item()
	if it.Likes != 12 || it.Comments != 0 || it.Region != RegionKerala || it.Language != LanguageOther {
		t.Fatalf("post item unexpected: %+v", it)
	}
	if it.CreatedAt != nil {
		t.Fatalf("missing created_at must stay nil")
	}

	r := Reel{ID: "r", ThumbnailURL: "thumb.jpg"}
	if ri := r.Item(); ri.Views != 0 || ri.Thumbnail != "thumb.jpg" || ri.Deity != DeityOther {
		t.Fatalf("reel item unexpected: %+v", ri)
	}

	m := MusicTrack{ID: "m", Title: "T", Category: " Aarti "}
	if mi := m.Item(); mi.Category != "aarti" || mi.Plays != 0 {
		t.Fatalf("music item unexpected: %+v", mi)
	}

	tm := Temple{ID: "t", District: "Madurai", State: "tamil_nadu", Images: []string{"a.jpg", "b.jpg"}}
	ti := tm.Item()
	if ti.Location != "Madurai, tamil_nadu" || ti.Image != "a.jpg" || ti.State != RegionTamilNadu {
		t.Fatalf("temple item unexpected: %+v", ti)
	}
	tm.Address = "East Masi St"
	if tm.Item().Location != "East Masi St" {
		t.Fatalf("address should win over district/state")
	}
	if (Temple{}).Item().Image != "" {
		t.Fatalf("temple without images should have empty image")
	}
}

func TestItems_EmptyIsNonNil(t *testing.T) {
	if PostItems(nil) == nil || ReelItems(nil) == nil || MusicItems(nil) == nil || TempleItems(nil) == nil {
		t.Fatalf("normalized slices must be non-nil")
	}
}
