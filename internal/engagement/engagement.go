// Package engagement persists the user's likes, views and plays. Records
// never expire; recording an id that is already present is a no-op.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/store"
)

// Key is the store key holding the engagement record.
const Key = "user-engagement"

// ErrUnknownKind is returned for an engagement kind outside domain.EngagementKinds.
var ErrUnknownKind = errors.New("unknown engagement kind")

// Store is the EngagementStore.
type Store struct {
	kv  store.KV
	log zerolog.Logger

	// serializes read-modify-write cycles within this process
	mu sync.Mutex
}

// New builds a Store over kv.
func New(kv store.KV, log zerolog.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// Get returns the current record. A missing or unreadable record yields an
// empty one.
func (s *Store) Get(ctx context.Context) (domain.UserEngagement, error) {
	raw, err := s.kv.Get(ctx, Key)
	if errors.Is(err, store.ErrNotFound) {
		return domain.NewUserEngagement(), nil
	}
	if err != nil {
		return domain.NewUserEngagement(), fmt.Errorf("read engagement: %w", err)
	}
	e := domain.NewUserEngagement()
	if err := json.Unmarshal(raw, &e); err != nil {
		s.log.Warn().Err(err).Msg("engagement record unreadable; starting empty")
		return domain.NewUserEngagement(), nil
	}
	fillNil(&e)
	return e, nil
}

// Record adds id to the set for kind and persists immediately. It reports
// whether the id was newly added.
func (s *Store) Record(ctx context.Context, kind domain.EngagementKind, id string) (bool, error) {
	if !kind.Valid() {
		return false, ErrUnknownKind
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.Get(ctx)
	if err != nil {
		return false, err
	}
	set := e.Set(kind)
	if set.Has(id) {
		return false, nil
	}
	set[id] = struct{}{}

	b, err := json.Marshal(e)
	if err != nil {
		return false, fmt.Errorf("encode engagement: %w", err)
	}
	if err := s.kv.Set(ctx, Key, b); err != nil {
		return false, fmt.Errorf("write engagement: %w", err)
	}
	return true, nil
}

// fillNil allocates sets absent from older or partial records.
func fillNil(e *domain.UserEngagement) {
	for _, p := range []*domain.IDSet{&e.LikedPosts, &e.LikedReels, &e.ViewedPosts, &e.ViewedReels, &e.PlayedMusic} {
		if *p == nil {
			*p = domain.IDSet{}
		}
	}
}
