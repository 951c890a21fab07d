// Package locker provides per-key serialization for operations that must
// not run concurrently for the same entity, such as deliverable generation
// for a single sponsorship.
package locker

import "sync"

// Keyed serializes callers holding the same key while letting callers with
// different keys proceed in parallel. Entries are reference-counted and
// removed once the last holder releases, so the map does not grow with the
// number of distinct keys seen.
type Keyed struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyed creates a new keyed locker
func NewKeyed() *Keyed {
	return &Keyed{
		locks: make(map[string]*entry),
	}
}

// Lock acquires the lock for the given key, blocking until it is available
func (k *Keyed) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for the given key
func (k *Keyed) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("locker: unlock of unheld key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// Do runs fn while holding the lock for the given key
func (k *Keyed) Do(key string, fn func() error) error {
	k.Lock(key)
	defer k.Unlock(key)
	return fn()
}
