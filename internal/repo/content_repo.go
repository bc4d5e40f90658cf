// Package repo implements the read side of the content collections, backed
// by GORM. This file provides the candidate and trending queries used by
// the recommendation and trending services.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow
// the "thin repository" approach: no scoring or fallback logic, only query
// composition. Raw rows are returned; normalization into canonical items is
// done by the domain types.
//
// Functions:
//
//   - RecentPosts/RecentReels/RecentMusic/RecentTemples(ctx, db, limit)
//     Most recent rows first; rows without created_at sort last.
//
//   - TopPostsByRegion/TopReelsByRegion/TopMusicByRegion/TopTemplesByState(ctx, db, region, limit)
//     Rows of one region ordered by their popularity counter, descending.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

// recent orders newest first with NULL created_at last, then by id so the
// candidate order is stable across calls.
const recent = "created_at IS NULL, created_at DESC, id ASC"

func listRecent[T any](ctx context.Context, db *gorm.DB, limit int) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).Order(recent).Limit(limit).Find(&rows).Error
	return rows, err
}

func listTop[T any](ctx context.Context, db *gorm.DB, regionCol, region, counter string, limit int) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).
		Where(regionCol+" = ?", region).
		Order(counter + " IS NULL, " + counter + " DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// RecentPosts returns up to limit posts, newest first.
func RecentPosts(ctx context.Context, db *gorm.DB, limit int) ([]domain.Post, error) {
	return listRecent[domain.Post](ctx, db, limit)
}

// RecentReels returns up to limit reels, newest first.
func RecentReels(ctx context.Context, db *gorm.DB, limit int) ([]domain.Reel, error) {
	return listRecent[domain.Reel](ctx, db, limit)
}

// RecentMusic returns up to limit music tracks, newest first.
func RecentMusic(ctx context.Context, db *gorm.DB, limit int) ([]domain.MusicTrack, error) {
	return listRecent[domain.MusicTrack](ctx, db, limit)
}

// RecentTemples returns up to limit temples, newest first.
func RecentTemples(ctx context.Context, db *gorm.DB, limit int) ([]domain.Temple, error) {
	return listRecent[domain.Temple](ctx, db, limit)
}

// TopPostsByRegion returns the most liked posts of region.
func TopPostsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Post, error) {
	return listTop[domain.Post](ctx, db, "region", region, "likes_count", limit)
}

// TopReelsByRegion returns the most viewed reels of region.
func TopReelsByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.Reel, error) {
	return listTop[domain.Reel](ctx, db, "region", region, "views_count", limit)
}

// TopMusicByRegion returns the most played tracks of region.
func TopMusicByRegion(ctx context.Context, db *gorm.DB, region string, limit int) ([]domain.MusicTrack, error) {
	return listTop[domain.MusicTrack](ctx, db, "region", region, "play_count", limit)
}

// TopTemplesByState returns the most followed temples of state.
func TopTemplesByState(ctx context.Context, db *gorm.DB, state string, limit int) ([]domain.Temple, error) {
	return listTop[domain.Temple](ctx, db, "state", state, "followers_count", limit)
}
