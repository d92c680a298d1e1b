package repository

import (
	"context"
	"fmt"

	applogger "QuoteFrame/pkg/logger"
)

// messageProducer is the part of pkg/kafka.Producer the log publisher needs.
type messageProducer interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
}

// KafkaLogPublisher ships aggregated log batches to Kafka, keyed by service
// instance so one instance's batches stay ordered within a partition.
type KafkaLogPublisher struct {
	producer messageProducer
	key      []byte
}

var _ applogger.Publisher = (*KafkaLogPublisher)(nil)

func NewKafkaLogPublisher(producer messageProducer, instance string) *KafkaLogPublisher {
	return &KafkaLogPublisher{producer: producer, key: []byte(instance)}
}

func (p *KafkaLogPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	if topic == "" {
		return fmt.Errorf("log publisher: empty topic")
	}
	if err := p.producer.Publish(ctx, topic, p.key, payload); err != nil {
		return fmt.Errorf("log publisher: %w", err)
	}
	return nil
}
