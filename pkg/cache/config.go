package cache

import "time"

const (
	DefaultTTL      = 5 * time.Minute
	DefaultCapacity = 10
)

// WindowOption configures a Window cache.
type WindowOption func(*WindowConfig)

// WindowConfig holds Window cache configuration.
type WindowConfig struct {
	TTL      time.Duration
	Capacity int
	Now      func() time.Time
}

// WithTTL sets how long an entry stays visible after insertion.
func WithTTL(ttl time.Duration) WindowOption {
	return func(c *WindowConfig) {
		if ttl > 0 {
			c.TTL = ttl
		}
	}
}

// WithCapacity sets the maximum number of entries.
func WithCapacity(n int) WindowOption {
	return func(c *WindowConfig) {
		if n > 0 {
			c.Capacity = n
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) WindowOption {
	return func(c *WindowConfig) {
		if now != nil {
			c.Now = now
		}
	}
}
