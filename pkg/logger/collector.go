package logger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"
)

const (
	defaultFlushInterval  = 30 * time.Second
	defaultCountThreshold = 100
	publishTimeout        = 30 * time.Second
)

// Publisher ships a batch of aggregated log entries to topic.
type Publisher interface {
	PublishMessage(ctx context.Context, topic string, payload interface{}) error
}

type CollectionConfig struct {
	TimeInterval   time.Duration // flush interval
	CountThreshold int           // distinct entries that trigger an early flush
	Topic          string
	Publisher      Publisher
}

// AggregatedLogEntry is one distinct (level, message, fields, caller) tuple and
// how often it was seen since the last flush.
type AggregatedLogEntry struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
	Caller    string                 `json:"caller"`
	Count     int                    `json:"count"`
	FirstSeen time.Time              `json:"first_seen"`
	LastSeen  time.Time              `json:"last_seen"`
}

// LogCollector deduplicates error logs and publishes them in batches.
type LogCollector struct {
	config  CollectionConfig
	entries map[string]*AggregatedLogEntry
	mutex   sync.Mutex
	stop    chan struct{}
	wg      sync.WaitGroup
}

func NewLogCollector(config *CollectionConfig) *LogCollector {
	cfg := *config
	if cfg.TimeInterval <= 0 {
		cfg.TimeInterval = defaultFlushInterval
	}
	if cfg.CountThreshold <= 0 {
		cfg.CountThreshold = defaultCountThreshold
	}

	c := &LogCollector{
		config:  cfg,
		entries: make(map[string]*AggregatedLogEntry),
		stop:    make(chan struct{}),
	}
	c.wg.Add(1)
	go c.run()
	return c
}

func (c *LogCollector) AddLog(level, message string, fields map[string]interface{}, caller string) {
	now := time.Now()
	key := entryKey(level, message, fields, caller)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.Count++
		entry.LastSeen = now
	} else {
		c.entries[key] = &AggregatedLogEntry{
			Level:     level,
			Message:   message,
			Fields:    fields,
			Caller:    caller,
			Count:     1,
			FirstSeen: now,
			LastSeen:  now,
		}
	}

	if len(c.entries) >= c.config.CountThreshold {
		c.publish(c.drain())
	}
}

func entryKey(level, message string, fields map[string]interface{}, caller string) string {
	// json.Marshal sorts map keys, so equal field sets hash equally.
	b, _ := json.Marshal(struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
		Caller  string                 `json:"caller"`
	}{level, message, fields, caller})
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func (c *LogCollector) run() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.config.TimeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.flush()
		case <-c.stop:
			c.flush()
			return
		}
	}
}

func (c *LogCollector) flush() {
	c.mutex.Lock()
	batch := c.drain()
	c.mutex.Unlock()
	c.publish(batch)
}

// drain empties the entry map. Callers hold the mutex.
func (c *LogCollector) drain() []AggregatedLogEntry {
	if len(c.entries) == 0 {
		return nil
	}
	out := make([]AggregatedLogEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, *e)
	}
	c.entries = make(map[string]*AggregatedLogEntry)
	sort.Slice(out, func(i, j int) bool { return out[i].FirstSeen.Before(out[j].FirstSeen) })
	return out
}

func (c *LogCollector) publish(batch []AggregatedLogEntry) {
	if len(batch) == 0 || c.config.Publisher == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := c.config.Publisher.PublishMessage(ctx, c.config.Topic, batch); err != nil {
			// The logger itself feeds this collector, so report on stderr directly.
			fmt.Fprintf(os.Stderr, "log collector: publish %d entries: %v\n", len(batch), err)
		}
	}()
}

// Close flushes pending entries and waits for in-flight publishes.
func (c *LogCollector) Close() {
	close(c.stop)
	c.wg.Wait()
}
