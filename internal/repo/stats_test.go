package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	// Unique DB per test to avoid schema leaking across tests.
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func contentDB(t *testing.T) *gorm.DB {
	t.Helper()
	return newTestDB(t, &domain.Post{}, &domain.Reel{}, &domain.MusicTrack{}, &domain.Temple{})
}

func TestStats_ErrorWhenTablesMissing(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	if _, err := Stats(context.Background(), db); err == nil {
		t.Fatalf("expected error due to missing content tables")
	}
}

func TestStats_EmptyTables(t *testing.T) {
	db := contentDB(t)
	st, err := Stats(context.Background(), db)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if !st.Empty() {
		t.Fatalf("expected empty stats, got %+v", st)
	}
	if len(st) != 4 {
		t.Fatalf("expected 4 collections, got %d", len(st))
	}
	for k, c := range st {
		if c.Newest != nil {
			t.Fatalf("%s: newest should be nil on empty table", k)
		}
	}
}

func TestStats_CountsAndNewest(t *testing.T) {
	db := contentDB(t)
	ctx := context.Background()

	older := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		{ID: "p1", CreatedAt: &older},
		{ID: "p2", CreatedAt: &newer},
		{ID: "p3"},
	}
	if err := db.Create(&posts).Error; err != nil {
		t.Fatalf("seed posts: %v", err)
	}
	if err := db.Create(&domain.Temple{ID: "t1", Name: "Kashi"}).Error; err != nil {
		t.Fatalf("seed temple: %v", err)
	}

	st, err := Stats(ctx, db)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.Empty() {
		t.Fatalf("stats should not be empty")
	}
	if got := st[domain.KindPosts].Count; got != 3 {
		t.Fatalf("posts count=%d want 3", got)
	}
	if n := st[domain.KindPosts].Newest; n == nil || !n.Equal(newer) {
		t.Fatalf("posts newest=%v want %v", n, newer)
	}
	if got := st[domain.KindTemples]; got.Count != 1 || got.Newest != nil {
		t.Fatalf("temples stats unexpected: %+v", got)
	}
	if st[domain.KindReels].Count != 0 || st[domain.KindMusic].Count != 0 {
		t.Fatalf("reels/music should be empty: %+v", st)
	}
}
