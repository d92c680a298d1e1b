package logger

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu      sync.Mutex
	topic   string
	batches [][]AggregatedLogEntry
}

func (p *recordingPublisher) PublishMessage(_ context.Context, topic string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topic = topic
	p.batches = append(p.batches, payload.([]AggregatedLogEntry))
	return nil
}

func (p *recordingPublisher) entries() []AggregatedLogEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []AggregatedLogEntry
	for _, b := range p.batches {
		out = append(out, b...)
	}
	return out
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&Config{Level: "loud", Output: "stdout"})
	require.Error(t, err)
}

func TestNewWritesToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, err := New(&Config{Level: "info", Format: "json", Output: path, MaxSizeMB: 1})
	require.NoError(t, err)
	l.Info("hello", String("k", "v"))
	assert.FileExists(t, path)
}

func TestCollectorAggregatesRepeatedErrors(t *testing.T) {
	pub := &recordingPublisher{}
	l := Nop()
	l.AddCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 100, Topic: "logs", Publisher: pub})

	for i := 0; i < 3; i++ {
		l.Error("fetch failed", String("ticker", "AAPL"), Error(errors.New("boom")))
	}
	l.Error("fetch failed", String("ticker", "MSFT"))
	l.Warn("not collected")
	l.RemoveCollector()

	got := pub.entries()
	require.Len(t, got, 2)
	assert.Equal(t, "logs", pub.topic)
	assert.Equal(t, 3, got[0].Count)
	assert.Equal(t, "AAPL", got[0].Fields["ticker"])
	assert.Equal(t, "boom", got[0].Fields["error"])
	assert.Equal(t, 1, got[1].Count)
	assert.Contains(t, got[0].Caller, "logger_test.go")
}

func TestCollectorFlushesAtThreshold(t *testing.T) {
	pub := &recordingPublisher{}
	c := NewLogCollector(&CollectionConfig{TimeInterval: time.Hour, CountThreshold: 2, Publisher: pub})
	c.AddLog("error", "a", nil, "x")
	c.AddLog("error", "b", nil, "x")
	c.Close()

	got := pub.entries()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Message)
}

func TestFieldKeyValues(t *testing.T) {
	k, v := Duration("took", 1500*time.Millisecond).GetKeyValue()
	assert.Equal(t, "took", k)
	assert.Equal(t, int64(1500), v)

	k, v = Strings("tickers", []string{"A", "B"}).GetKeyValue()
	assert.Equal(t, "tickers", k)
	assert.Equal(t, "A, B", v)
}
