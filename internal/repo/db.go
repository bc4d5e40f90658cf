// Package repo implements the read side of the content collections (posts,
// reels, music tracks, temples), backed by GORM. This file contains database
// bootstrapping helpers for SQLite (pure Go driver) and schema migrations.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/bhakti-feed/internal/domain"
)

type dbOptions struct {
	busyTimeout time.Duration
	maxConns    int
	tracing     bool
	log         zerolog.Logger
}

// DBOption tunes OpenSQLite.
type DBOption func(*dbOptions)

// WithBusyTimeout sets how long a statement waits on a locked database.
func WithBusyTimeout(d time.Duration) DBOption {
	return func(o *dbOptions) {
		if d > 0 {
			o.busyTimeout = d
		}
	}
}

// WithMaxConns caps the connection pool.
func WithMaxConns(n int) DBOption {
	return func(o *dbOptions) {
		if n > 0 {
			o.maxConns = n
		}
	}
}

// WithLogger routes GORM warnings and slow-query reports through l.
func WithLogger(l zerolog.Logger) DBOption {
	return func(o *dbOptions) { o.log = l }
}

// gormLogger adapts zerolog to GORM. Missing rows are expected on cache
// and lookup paths and are not reported.
func gormLogger(l zerolog.Logger) logger.Interface {
	l = l.With().Str("component", "gorm").Logger()
	return logger.New(&l, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// WithoutTracing skips the OpenTelemetry GORM plugin.
func WithoutTracing() DBOption {
	return func(o *dbOptions) { o.tracing = false }
}

// OpenSQLite opens (or creates) the content database at path, applies
// PRAGMAs, tunes the pool and installs the tracing plugin. path may be a
// plain file path or a "file:" URI (in-memory test databases).
func OpenSQLite(path string, opts ...DBOption) (*gorm.DB, error) {
	o := dbOptions{busyTimeout: 5 * time.Second, maxConns: 10, tracing: true, log: log.Logger}
	for _, fn := range opts {
		fn(&o)
	}

	// sqlite reports a missing directory as "out of memory (14)"
	if !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger(o.log)})
	if err != nil {
		return nil, err
	}
	if o.tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, err
		}
	}

	for _, p := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		fmt.Sprintf("PRAGMA busy_timeout=%d;", o.busyTimeout.Milliseconds()),
	} {
		// in-memory databases keep journal_mode=memory; not an error
		db.Exec(p)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(o.maxConns)
		sqlDB.SetMaxIdleConns(o.maxConns)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// AutoMigrate creates or updates the content tables and the key/value table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Post{},
		&domain.Reel{},
		&domain.MusicTrack{},
		&domain.Temple{},
		&domain.KVEntry{},
	)
}
