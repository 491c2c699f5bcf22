package publisher

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/draftea-checkout-service/config"
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	kafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	failures int
	written  []kafka.Message
	calls    int
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.calls++
	if w.calls <= w.failures {
		return errors.New("leader not available")
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newTestPublisher(writer *fakeWriter) *KafkaPublisher {
	return &KafkaPublisher{
		Writers: map[string]MessageWriter{models.PaymentCapturedEventTopic: writer},
		RetryConfig: config.RetryConfig{
			MaxAttempts: 3,
			BaseDelay:   time.Millisecond,
			MaxDelay:    5 * time.Millisecond,
		},
	}
}

func TestPublish_KeyedEvent(t *testing.T) {
	writer := &fakeWriter{}
	p := newTestPublisher(writer)

	err := p.Publish(context.Background(), models.PaymentCapturedEventTopic, models.PaymentCapturedEvent{
		PaymentID:     "payment-123",
		TransactionID: "7956027",
	})

	require.NoError(t, err)
	require.Len(t, writer.written, 1)
	assert.Equal(t, "7956027", string(writer.written[0].Key))
	assert.Contains(t, string(writer.written[0].Value), `"payment_id":"payment-123"`)
}

func TestPublish_RetriesUntilWritten(t *testing.T) {
	writer := &fakeWriter{failures: 2}
	p := newTestPublisher(writer)

	err := p.Publish(context.Background(), models.PaymentCapturedEventTopic, map[string]string{"a": "b"})

	assert.NoError(t, err)
	assert.Equal(t, 3, writer.calls)
	assert.Nil(t, writer.written[0].Key)
}

func TestPublish_GivesUp(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	p := newTestPublisher(writer)

	err := p.Publish(context.Background(), models.PaymentCapturedEventTopic, "payload")

	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, 3, writer.calls)
}

func TestPublish_ContextCancelled(t *testing.T) {
	writer := &fakeWriter{failures: 10}
	p := newTestPublisher(writer)
	p.RetryConfig.BaseDelay = time.Hour
	p.RetryConfig.MaxDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, models.PaymentCapturedEventTopic, "payload")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, writer.calls)
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := newTestPublisher(&fakeWriter{})

	err := p.Publish(context.Background(), "unknown", "payload")

	assert.ErrorContains(t, err, "no writer configured")
}

func TestNewKafkaPublisher(t *testing.T) {
	p := NewKafkaPublisher("localhost:9092", []string{"payments.captured", " payments.dlq", ""}, config.RetryConfig{})

	assert.Len(t, p.Writers, 2)
	assert.Contains(t, p.Writers, models.PaymentsDLQTopic)
	assert.Equal(t, 5, p.RetryConfig.MaxAttempts)
	assert.NoError(t, p.Close())
}

func TestBackoff(t *testing.T) {
	retryConfig := config.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	assert.Equal(t, 100*time.Millisecond, Backoff(retryConfig, 0))
	assert.Equal(t, 400*time.Millisecond, Backoff(retryConfig, 2))
	assert.Equal(t, time.Second, Backoff(retryConfig, 10))

	retryConfig.Jitter = true
	for attempt := 0; attempt < 5; attempt++ {
		delay := Backoff(retryConfig, attempt)
		assert.GreaterOrEqual(t, delay, time.Duration(0))
		assert.LessOrEqual(t, delay, time.Duration(float64(time.Second)*1.15))
	}
}
