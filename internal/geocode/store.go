package geocode

import (
	"sync"

	"github.com/lumivahti/snowload-service/internal/domain"
)

// Entry is a cached resolution outcome. Found=false entries cache "not
// found" so a known-bad postal code never triggers repeated remote lookups.
type Entry struct {
	Location domain.PostalLocation
	Found    bool
}

// Store is the cache backing for the resolver. Entries are idempotent (a
// postal code always resolves to the same value), so implementations only
// need key-independent write safety, not transactional semantics.
type Store interface {
	Get(postalCode string) (Entry, bool)
	Put(postalCode string, e Entry)
}

// MapStore is the default in-process Store. Unbounded; the key space is
// Finnish postal codes, a few thousand at most.
type MapStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{entries: make(map[string]Entry)}
}

func (s *MapStore) Get(postalCode string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[postalCode]
	return e, ok
}

func (s *MapStore) Put(postalCode string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[postalCode] = e
}

// Reset clears the store. Test hook.
func (s *MapStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]Entry)
}
