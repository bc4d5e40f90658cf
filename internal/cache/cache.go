// Package cache memoizes scored lists and generated text on top of a
// persisted key/value store. Every entry carries a timestamp whose meaning
// depends on the content: the write instant for TTL-bounded lists, the
// calendar day for daily content, and the week's Monday for weekly content.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/observability"
	"github.com/tbourn/bhakti-feed/internal/store"
	"github.com/tbourn/bhakti-feed/internal/utils"
)

// Entry is the stored envelope.
type Entry struct {
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// Store is the CacheStore. It is safe for concurrent use; concurrent misses
// on one key may both regenerate, and the last write wins.
type Store struct {
	kv  store.KV
	now func() time.Time
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for corrupt-entry and sweep reports.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New builds a Store over kv.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{kv: kv, now: time.Now, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Now returns the store's current time.
func (s *Store) Now() time.Time { return s.now() }

// Put stores v under key with timestamp ts.
func (s *Store) Put(ctx context.Context, key string, v any, ts time.Time) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	b, err := json.Marshal(Entry{Payload: payload, Timestamp: ts})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, b)
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.kv.Delete(ctx, key)
}

// Load returns the raw entry for key. Entries that fail to parse are
// deleted and reported as missing.
func (s *Store) Load(ctx context.Context, key string) (Entry, bool) {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		}
		return Entry{}, false
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil || len(e.Payload) == 0 {
		s.dropCorrupt(ctx, key, err)
		return Entry{}, false
	}
	return e, true
}

func (s *Store) dropCorrupt(ctx context.Context, key string, cause error) {
	observability.ObserveCache(key, observability.CacheCorrupt)
	s.log.Warn().Err(cause).Str("key", key).Msg("dropping corrupt cache entry")
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("delete corrupt cache entry")
	}
}

// get decodes key into dst when current(ts) holds.
func (s *Store) get(ctx context.Context, key string, dst any, current func(ts time.Time) bool) bool {
	e, ok := s.Load(ctx, key)
	if !ok {
		observability.ObserveCache(key, observability.CacheMiss)
		return false
	}
	if !current(e.Timestamp) {
		observability.ObserveCache(key, observability.CacheStale)
		return false
	}
	if err := json.Unmarshal(e.Payload, dst); err != nil {
		s.dropCorrupt(ctx, key, err)
		return false
	}
	observability.ObserveCache(key, observability.CacheHit)
	return true
}

// GetFresh decodes key into dst if it was written less than ttl ago.
func (s *Store) GetFresh(ctx context.Context, key string, ttl time.Duration, dst any) bool {
	cutoff := s.now().Add(-ttl)
	return s.get(ctx, key, dst, func(ts time.Time) bool { return ts.After(cutoff) })
}

// GetDaily decodes key into dst if it was stored today.
func (s *Store) GetDaily(ctx context.Context, key string, dst any) bool {
	return s.get(ctx, key, dst, func(ts time.Time) bool { return IsToday(ts, s.now()) })
}

// GetWeekly decodes key into dst if its timestamp is this week's Monday.
func (s *Store) GetWeekly(ctx context.Context, key string, dst any) bool {
	return s.get(ctx, key, dst, func(ts time.Time) bool { return IsThisWeek(ts, s.now()) })
}

// PutDaily stores v stamped with the current instant.
func (s *Store) PutDaily(ctx context.Context, key string, v any) error {
	return s.Put(ctx, key, v, s.now())
}

// PutWeekly stores v stamped with this week's Monday.
func (s *Store) PutWeekly(ctx context.Context, key string, v any) error {
	return s.Put(ctx, key, v, utils.WeekStart(s.now()))
}

// IsToday reports whether ts falls on now's calendar day.
func IsToday(ts, now time.Time) bool { return utils.SameDay(now, ts) }

// IsThisWeek reports whether ts falls on the Monday starting now's week.
func IsThisWeek(ts, now time.Time) bool { return utils.SameDay(utils.WeekStart(now), ts) }

// SweepRule selects keys by prefix and decides whether an entry is still current.
type SweepRule struct {
	Prefix  string
	Current func(ts, now time.Time) bool
}

// Daily returns a rule keeping entries stored today.
func Daily(prefix string) SweepRule { return SweepRule{Prefix: prefix, Current: IsToday} }

// Weekly returns a rule keeping entries stamped with this week's Monday.
func Weekly(prefix string) SweepRule { return SweepRule{Prefix: prefix, Current: IsThisWeek} }

// Fresh returns a rule keeping entries written less than ttl ago.
func Fresh(prefix string, ttl time.Duration) SweepRule {
	return SweepRule{Prefix: prefix, Current: func(ts, now time.Time) bool { return now.Sub(ts) < ttl }}
}

// ClearOld deletes every entry matched by a rule that is no longer current,
// plus matched entries that fail to parse. It returns the number removed.
// Safe to call repeatedly and alongside reads.
func (s *Store) ClearOld(ctx context.Context, rules ...SweepRule) (int, error) {
	now := s.now()
	removed := 0
	for _, r := range rules {
		keys, err := s.kv.Keys(ctx, r.Prefix)
		if err != nil {
			return removed, fmt.Errorf("list %s*: %w", r.Prefix, err)
		}
		for _, k := range keys {
			if !strings.HasPrefix(k, r.Prefix) {
				continue
			}
			raw, err := s.kv.Get(ctx, k)
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return removed, fmt.Errorf("read %s: %w", k, err)
			}
			var e Entry
			if err := json.Unmarshal(raw, &e); err == nil && r.Current(e.Timestamp, now) {
				continue
			}
			if err := s.kv.Delete(ctx, k); err != nil {
				return removed, fmt.Errorf("delete %s: %w", k, err)
			}
			removed++
		}
	}
	if removed > 0 {
		s.log.Info().Int("removed", removed).Msg("cleared old cache entries")
	}
	return removed, nil
}
