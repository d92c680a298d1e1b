package cache

import (
	"container/list"
	"sync"
	"time"
)

type windowItem[K comparable, V any] struct {
	key      K
	value    V
	expireAt time.Time
}

// Window is an in-memory cache bounded both in time and in size.
//
// An entry is visible for TTL after its last Set; a Get past that point is a
// miss and drops the entry. When a new key would exceed Capacity, expired
// entries are purged first and then the least recently used entry (by Get hit
// or Set) is evicted. Window is safe for concurrent use.
type Window[K comparable, V any] struct {
	mutex    sync.Mutex
	items    map[K]*list.Element
	order    *list.List // front = most recently used
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewWindow creates a Window cache.
func NewWindow[K comparable, V any](opts ...WindowOption) *Window[K, V] {
	cfg := &WindowConfig{
		TTL:      DefaultTTL,
		Capacity: DefaultCapacity,
		Now:      time.Now,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Window[K, V]{
		items:    make(map[K]*list.Element, cfg.Capacity),
		order:    list.New(),
		ttl:      cfg.TTL,
		capacity: cfg.Capacity,
		now:      cfg.Now,
	}
}

// Get returns the live value stored under key.
func (w *Window[K, V]) Get(key K) (V, bool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	var zero V
	el, ok := w.items[key]
	if !ok {
		return zero, false
	}
	item := el.Value.(*windowItem[K, V])
	if w.now().After(item.expireAt) {
		w.remove(el)
		return zero, false
	}
	w.order.MoveToFront(el)
	return item.value, true
}

// Set stores value under key, replacing any previous entry and restarting its TTL.
func (w *Window[K, V]) Set(key K, value V) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	now := w.now()
	if el, ok := w.items[key]; ok {
		item := el.Value.(*windowItem[K, V])
		item.value = value
		item.expireAt = now.Add(w.ttl)
		w.order.MoveToFront(el)
		return
	}

	if len(w.items) >= w.capacity {
		w.purgeExpired(now)
	}
	for len(w.items) >= w.capacity {
		w.remove(w.order.Back())
	}

	w.items[key] = w.order.PushFront(&windowItem[K, V]{
		key:      key,
		value:    value,
		expireAt: now.Add(w.ttl),
	})
}

// Len returns the number of stored entries, expired ones included until
// they are touched or purged.
func (w *Window[K, V]) Len() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return len(w.items)
}

// Purge drops every expired entry and reports how many were removed.
func (w *Window[K, V]) Purge() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.purgeExpired(w.now())
}

func (w *Window[K, V]) purgeExpired(now time.Time) int {
	n := 0
	for el := w.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*windowItem[K, V]).expireAt) {
			w.remove(el)
			n++
		}
		el = prev
	}
	return n
}

func (w *Window[K, V]) remove(el *list.Element) {
	item := w.order.Remove(el).(*windowItem[K, V])
	delete(w.items, item.key)
}
