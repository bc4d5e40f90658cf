package domain

import "time"

// KVEntry is a row of the kv_entries table backing the SQLite key/value
// store used by the cache and engagement stores.
type KVEntry struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     []byte    `gorm:"type:blob;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the database table name for KVEntry.
func (KVEntry) TableName() string { return "kv_entries" }
