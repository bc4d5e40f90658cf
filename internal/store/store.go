// Package store provides the persisted key/value backends shared by the
// cache and engagement stores. Two implementations exist: a table in the
// application's SQLite database (via GORM) and an embedded BadgerDB.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("not found")

// KV is a string-keyed byte store that supports prefix enumeration.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists every key starting with prefix; an empty prefix lists all keys.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the KV selected by backend. The SQLite backend reuses db and
// needs no closing; the Badger backend opens its own files at badgerPath and
// must be closed by the caller.
func Open(backend string, db *gorm.DB, badgerPath string) (KV, io.Closer, error) {
	switch backend {
	case BackendSQLite, "":
		if db == nil {
			return nil, nil, errors.New("sqlite backend requires a database")
		}
		return NewSQLite(db), nopCloser{}, nil
	case BackendBadger:
		b, err := OpenBadger(badgerPath)
		if err != nil {
			return nil, nil, err
		}
		return b, b, nil
	default:
		return nil, nil, fmt.Errorf("unknown kv backend %q", backend)
	}
}
