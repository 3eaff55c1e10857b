package reservation

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	holder    string
	expiresAt time.Time
}

// MemorySlotStore is a process-local SlotStore for tests and redis-less
// development. Expired entries are logically absent and evicted lazily on the
// next access to their key.
type MemorySlotStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemorySlotStore returns an empty in-memory slot store.
func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemorySlotStore) TryReserve(_ context.Context, key, holder string, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		if s.now().Before(entry.expiresAt) {
			return false
		}
		delete(s.entries, key)
	}
	s.entries[key] = memoryEntry{holder: holder, expiresAt: s.now().Add(ttl)}
	return true
}

func (s *MemorySlotStore) Release(_ context.Context, key, holder string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || entry.holder != holder {
		return
	}
	delete(s.entries, key)
}
