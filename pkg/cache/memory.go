package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// entry holds a cached value with its expiration time and key.
type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
	key       string
}

func (e *entry[V]) expiredAt(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is a process-local cache with TTL expiry and optional LRU
// eviction once WithMaxEntries is reached. The most recently touched
// entry sits at the front of the eviction list.
type Memory[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *memoryOptions
	now      func() time.Time
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
}

// NewMemory creates a new in-memory cache.
//
// Example:
//
//	seen := cache.NewMemory[time.Time](
//	    cache.WithDefaultTTL(10 * time.Minute),
//	    cache.WithMaxEntries(10000),
//	)
//	defer seen.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
		now:      o.clock,
		done:     make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves a value by key and marks it as recently used.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	if m.closed {
		return zero, ErrClosed
	}

	elem, ok := m.live(key)
	if !ok {
		return zero, ErrNotFound
	}

	m.eviction.MoveToFront(elem)
	return elem.Value.(*entry[V]).value, nil
}

// Set stores a value with the given TTL.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.store(key, value, m.expiry(ttl))
	return nil
}

// Add stores value only when key is absent or expired.
func (m *Memory[V]) Add(_ context.Context, key string, value V, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, ErrClosed
	}
	if _, ok := m.live(key); ok {
		return false, nil
	}

	m.store(key, value, m.expiry(ttl))
	return true, nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if elem, ok := m.items[key]; ok {
		m.remove(elem)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included
// until the janitor or a lookup drops them.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor. Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)
	return nil
}

// update applies fn to the live value of key (zero value and false when
// absent) and stores the result. A new entry gets the TTL; an existing
// one keeps its expiry. Returns the stored value and its expiry.
func (m *Memory[V]) update(key string, ttl time.Duration, fn func(cur V, exists bool) V) (V, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	if m.closed {
		return zero, time.Time{}, ErrClosed
	}

	if elem, ok := m.live(key); ok {
		e := elem.Value.(*entry[V])
		e.value = fn(e.value, true)
		m.eviction.MoveToFront(elem)
		return e.value, e.expiresAt, nil
	}

	v := fn(zero, false)
	expiresAt := m.expiry(ttl)
	m.store(key, v, expiresAt)
	return v, expiresAt, nil
}

// live returns the element for key, dropping it if expired.
// Caller must hold the mutex.
func (m *Memory[V]) live(key string) (*list.Element, bool) {
	elem, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if elem.Value.(*entry[V]).expiredAt(m.now()) {
		m.remove(elem)
		return nil, false
	}
	return elem, true
}

// store inserts or replaces key. Caller must hold the mutex.
func (m *Memory[V]) store(key string, value V, expiresAt time.Time) {
	if elem, ok := m.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		m.eviction.MoveToFront(elem)
		return
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.eviction.Back(); oldest != nil {
			m.remove(oldest)
		}
	}

	m.items[key] = m.eviction.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
}

// expiry converts a TTL into an absolute deadline; zero means never.
func (m *Memory[V]) expiry(ttl time.Duration) time.Time {
	ttl = resolveTTL(ttl, m.opts.defaultTTL)
	if ttl < 0 {
		return time.Time{}
	}
	return m.now().Add(ttl)
}

// remove drops elem. Caller must hold the mutex.
func (m *Memory[V]) remove(elem *list.Element) {
	m.eviction.Remove(elem)
	delete(m.items, elem.Value.(*entry[V]).key)
}

func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory[V]) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for elem := m.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[V]).expiredAt(now) {
			m.remove(elem)
		}
		elem = prev
	}
}

var _ Cache[any] = (*Memory[any])(nil)
