package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/notequiz/pkg/domain"
	"github.com/aretw0/notequiz/pkg/ports"
)

var _ ports.SummaryCache = (*Store)(nil)

// Store implements ports.SummaryCache in memory.
// Safe for concurrent use. Entries never expire.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Get returns the cached summary.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.data[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return summary, nil
}

// Set stores the summary.
func (s *Store) Set(ctx context.Context, key, summary string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = summary
	return nil
}

// Delete removes the entry.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Keys returns the cached keys in sorted order.
func (s *Store) Keys(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
