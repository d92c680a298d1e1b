package kafka

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	require.Error(t, err)
}

func TestNewProducerRejectsUnknownCompression(t *testing.T) {
	_, err := NewProducer(WithBrokers([]string{"localhost:9092"}), WithCompression("brotli"))
	require.Error(t, err)
}

func TestNewProducerDefaults(t *testing.T) {
	p, err := NewProducer(WithBrokers([]string{"localhost:9092"}), WithMaxAttempts(0))
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 3, p.writer.MaxAttempts)
	assert.Equal(t, kafka.Gzip, p.writer.Compression)
	assert.Equal(t, kafka.RequireAll, p.writer.RequiredAcks)
}

func TestEncode(t *testing.T) {
	b, err := encode(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(b))

	b, err = encode("raw")
	require.NoError(t, err)
	assert.Equal(t, "raw", string(b))

	_, err = encode(make(chan int))
	require.Error(t, err)
}
