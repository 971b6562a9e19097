// Package cache holds contributor fetch results for a fixed freshness
// window. The store is constructed once per process and injected into
// the app service.
package cache

import (
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/badgeworks/gitbadge/internal/app"
)

// Store maps composite request keys to timestamped contributor lists.
// Entries past their ttl behave as absent and are pruned lazily on
// lookup. The underlying lru bound is opportunistic pruning only;
// expiry on read stays the authoritative behavior.
type Store struct {
	entries *lru.Cache
	ttl     time.Duration
}

var _ app.ContributorStore = &Store{}

type entry struct {
	created time.Time
	records []app.Contributor
}

// NewStore creates a Store keeping entries fresh for ttl.
func NewStore(size int, ttl time.Duration) (*Store, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &Store{
		entries: entries,
		ttl:     ttl,
	}, nil
}

// Get returns the records stored under key while they are fresh.
func (s *Store) Get(key string) ([]app.Contributor, bool) {
	val, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}

	e := val.(entry)
	if !e.created.Add(s.ttl).After(time.Now()) {
		s.entries.Remove(key)
		return nil, false
	}

	return e.records, true
}

// Put stores records under key unconditionally, last writer wins.
func (s *Store) Put(key string, records []app.Contributor) {
	s.entries.Add(key, entry{
		created: time.Now(),
		records: records,
	})
}

// InvalidatePrefix removes all entries whose key begins with prefix and
// returns how many were dropped.
func (s *Store) InvalidatePrefix(prefix string) int {
	var removed int
	for _, k := range s.entries.Keys() {
		key, ok := k.(string)
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		if s.entries.Remove(key) {
			removed++
		}
	}

	return removed
}

// Clear removes everything and reports the prior size.
func (s *Store) Clear() int {
	n := s.entries.Len()
	s.entries.Purge()

	return n
}

// Len returns the current entry count.
func (s *Store) Len() int {
	return s.entries.Len()
}
