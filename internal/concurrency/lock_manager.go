// Package concurrency provides named mutual-exclusion scopes. The opening
// coordinator and ledger key them by user ID so that check-then-mutate
// sequences (balance check followed by debit, role change racing a pending
// resolution) serialize per user while different users proceed in parallel.
package concurrency

import "sync"

// LockManager handles named locks. Locks are created on first use and kept for
// the process lifetime; the population of keys (user IDs) is bounded.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it if needed.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the key's mutex.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
