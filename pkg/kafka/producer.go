package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

// Producer wraps a kafka-go Writer that routes each message by its Topic field.
type Producer struct {
	writer *kafka.Writer
	comp   string
}

// NewProducer creates a producer. It does not dial until the first write.
func NewProducer(opts ...ProducerOption) (*Producer, error) {
	cfg := &ProducerConfig{
		ClientID:     "quoteframe",
		RequiredAcks: -1,
		Compression:  "gzip",
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		BatchTimeout: time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("brokers are required")
	}
	codec, err := parseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Compression:  codec,
		MaxAttempts:  cfg.MaxAttempts,
		WriteTimeout: cfg.WriteTimeout,
		BatchTimeout: cfg.BatchTimeout,
		Async:        cfg.Async,
		Transport:    &kafka.Transport{ClientID: cfg.ClientID},
	}

	registerProducerMetrics()
	return &Producer{writer: writer, comp: cfg.Compression}, nil
}

// Publish writes one message to topic. Values other than []byte and string are JSON encoded.
func (p *Producer) Publish(ctx context.Context, topic string, key []byte, value interface{}) error {
	start := time.Now()
	v, err := encode(value)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: v,
		Time:  start,
	})
	observePublish(topic, p.comp, len(v), time.Since(start), err)
	return err
}

// Close flushes pending messages and closes the writer.
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

func encode(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal value: %w", err)
		}
		return b, nil
	}
}

func parseCompression(s string) (kafka.Compression, error) {
	switch s {
	case "", "gzip":
		return kafka.Gzip, nil
	case "snappy":
		return kafka.Snappy, nil
	case "lz4":
		return kafka.Lz4, nil
	case "zstd":
		return kafka.Zstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", s)
	}
}

var (
	producerMessages *prometheus.CounterVec
	producerBytes    *prometheus.CounterVec
	producerLatency  *prometheus.HistogramVec
	producerOnce     sync.Once
)

func registerProducerMetrics() {
	producerOnce.Do(func() {
		producerMessages = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quoteframe_kafka_producer_messages_total",
				Help: "Messages published to Kafka by result",
			},
			[]string{"topic", "compression", "result"},
		)
		producerBytes = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quoteframe_kafka_producer_bytes_total",
				Help: "Payload bytes published to Kafka",
			},
			[]string{"topic", "compression"},
		)
		producerLatency = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quoteframe_kafka_producer_publish_seconds",
				Help:    "Publish latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"topic"},
		)
	})
}

func observePublish(topic, comp string, bytes int, dur time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	producerMessages.WithLabelValues(topic, comp, result).Inc()
	producerBytes.WithLabelValues(topic, comp).Add(float64(bytes))
	producerLatency.WithLabelValues(topic).Observe(dur.Seconds())
}
