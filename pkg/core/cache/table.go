package cache

import (
	"sync"
	"sync/atomic"
)

// Observer receives hit/miss/fill notifications from a Table, typically to
// feed metrics.
type Observer interface {
	Hit(table string)
	Miss(table string)
	Filled(table string, size int)
}

// Table is a thread-safe, grow-only memo table. Entries are never evicted or
// expired: values are pure functions of their keys, so a stored value stays
// correct forever.
type Table[K comparable, V any] struct {
	name     string
	mu       sync.RWMutex
	items    map[K]V
	observer Observer

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

// NewTable creates an empty table. name labels observer notifications.
func NewTable[K comparable, V any](name string, observer Observer) *Table[K, V] {
	return &Table[K, V]{
		name:     name,
		items:    make(map[K]V),
		observer: observer,
	}
}

// Get retrieves a value from the table
func (t *Table[K, V]) Get(key K) (V, bool) {
	t.mu.RLock()
	v, ok := t.items[key]
	t.mu.RUnlock()

	if ok {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}

	if t.observer != nil {
		if ok {
			t.observer.Hit(t.name)
		} else {
			t.observer.Miss(t.name)
		}
	}
	return v, ok
}

// GetOrCompute returns the stored value for key or computes and stores it.
// fn runs outside the lock; concurrent callers may compute the same value
// redundantly and the first stored value wins.
func (t *Table[K, V]) GetOrCompute(key K, fn func() (V, error)) (V, error) {
	if v, ok := t.Get(key); ok {
		return v, nil
	}

	v, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}

	t.mu.Lock()
	if existing, ok := t.items[key]; ok {
		t.mu.Unlock()
		return existing, nil
	}
	t.items[key] = v
	size := len(t.items)
	t.mu.Unlock()

	if t.observer != nil {
		t.observer.Filled(t.name, size)
	}
	return v, nil
}

// Size returns the number of items in the table
func (t *Table[K, V]) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// Name returns the table label
func (t *Table[K, V]) Name() string {
	return t.name
}

// Stats returns table statistics
func (t *Table[K, V]) Stats() (hits, misses int64, hitRate float64) {
	hits = t.hits.Load()
	misses = t.misses.Load()
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}
