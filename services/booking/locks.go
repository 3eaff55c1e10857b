package booking

import "sync"

// lockTable serializes state transitions per booking id. Transitions on
// different bookings never contend; two transitions on the same booking are
// applied one after the other.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the per-booking mutex and returns the unlock function.
func (t *lockTable) acquire(id string) func() {
	t.mu.Lock()
	lock, exists := t.locks[id]
	if !exists {
		lock = &sync.Mutex{}
		t.locks[id] = lock
	}
	t.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
