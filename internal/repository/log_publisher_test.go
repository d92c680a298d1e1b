package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	topic string
	key   []byte
	value interface{}
	err   error
}

func (f *fakeProducer) Publish(_ context.Context, topic string, key []byte, value interface{}) error {
	f.topic, f.key, f.value = topic, key, value
	return f.err
}

func TestKafkaLogPublisher(t *testing.T) {
	prod := &fakeProducer{}
	p := NewKafkaLogPublisher(prod, "api-1")

	require.NoError(t, p.PublishMessage(context.Background(), "quoteframe.logs", []string{"x"}))
	assert.Equal(t, "quoteframe.logs", prod.topic)
	assert.Equal(t, []byte("api-1"), prod.key)
	assert.Equal(t, []string{"x"}, prod.value)
}

func TestKafkaLogPublisherErrors(t *testing.T) {
	boom := errors.New("broker down")
	p := NewKafkaLogPublisher(&fakeProducer{err: boom}, "api-1")

	require.Error(t, p.PublishMessage(context.Background(), "", nil))
	require.ErrorIs(t, p.PublishMessage(context.Background(), "logs", nil), boom)
}
