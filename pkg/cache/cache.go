package cache

// Store is a key/value cache that may drop entries at any time.
type Store[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
	Len() int
}

var _ Store[string, int] = (*Window[string, int])(nil)
