// Package repo implements the read side of the content collections. This
// file provides small aggregate queries used by the ops CLI and the
// boot-time seeding decision.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

// CollectionStats summarizes one content table.
type CollectionStats struct {
	Count  int64      `json:"count"`
	Newest *time.Time `json:"newest,omitempty"`
}

// ContentStats maps each content kind to its table summary.
type ContentStats map[domain.Kind]CollectionStats

// Empty reports whether every collection has zero rows.
func (s ContentStats) Empty() bool {
	for _, c := range s {
		if c.Count > 0 {
			return false
		}
	}
	return true
}

func collectionStats(ctx context.Context, db *gorm.DB, model any) (CollectionStats, error) {
	var out CollectionStats
	q := db.WithContext(ctx).Model(model)
	if err := q.Count(&out.Count).Error; err != nil {
		return out, err
	}
	if out.Count == 0 {
		return out, nil
	}

	// Latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt *time.Time
	}
	if err := db.WithContext(ctx).Model(model).
		Select("created_at").
		Where("created_at IS NOT NULL").
		Order("created_at DESC").
		Limit(1).
		Scan(&row).Error; err != nil {
		return out, err
	}
	out.Newest = row.CreatedAt
	return out, nil
}

// Stats returns the row count and newest created_at of every content table.
func Stats(ctx context.Context, db *gorm.DB) (ContentStats, error) {
	models := map[domain.Kind]any{
		domain.KindPosts:   &domain.Post{},
		domain.KindReels:   &domain.Reel{},
		domain.KindMusic:   &domain.MusicTrack{},
		domain.KindTemples: &domain.Temple{},
	}
	out := make(ContentStats, len(models))
	for kind, m := range models {
		s, err := collectionStats(ctx, db, m)
		if err != nil {
			return nil, err
		}
		out[kind] = s
	}
	return out, nil
}
