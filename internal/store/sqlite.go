package store

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

// SQLite stores entries in the kv_entries table. The table is created by
// repo.AutoMigrate.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite wraps an open GORM handle.
func NewSQLite(db *gorm.DB) *SQLite { return &SQLite{db: db} }

// Get returns the value for key. A miss is ErrNotFound; it is not a query
// error, so nothing is reported to the GORM logger.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var e domain.KVEntry
	res := s.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&e)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return e.Value, nil
}

// Set inserts or overwrites key.
func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	e := domain.KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

// Delete removes key; deleting a missing key is not an error.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&domain.KVEntry{}).Error
}

func (s *SQLite) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	q := s.db.WithContext(ctx).Model(&domain.KVEntry{})
	if prefix != "" {
		q = q.Where(`key LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")
	}
	if err := q.Order("key ASC").Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
