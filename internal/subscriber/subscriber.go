package subscriber

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jeffleon2/draftea-checkout-service/config"
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Handler processes one message. A returned error triggers a retry and, once
// the retries are exhausted, a copy of the message on the DLQ.
type Handler func(ctx context.Context, topic string, value []byte) error

// DLQPublisher receives the messages that could not be handled.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
	wg           sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, 0, len(topics))
	for _, topic := range topics {
		topic = strings.TrimSpace(topic)
		if topic == "" {
			continue
		}
		readers = append(readers, kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		}))
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  publisher.WithDefaults(retryConfig),
	}
}

// Listen starts one goroutine per topic and returns immediately. The readers
// stop when ctx is cancelled; Close waits for them.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r *kafka.Reader) {
			defer c.wg.Done()
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, io.EOF) {
						return
					}
					logrus.Errorf("[Kafka Consumer] topic=%s error: %v", r.Config().Topic, err)
					continue
				}
				c.processMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			return
		}
		if attempt == c.RetryConfig.MaxAttempts-1 {
			logrus.Errorf("[Kafka Consumer] Handler error, attempt %d/%d: %v", attempt+1, c.RetryConfig.MaxAttempts, err)
			break
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		logrus.Warnf("[Kafka Consumer] Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return
		}
	}

	logrus.Errorf("Message failed after %d retries: topic=%s, key=%s", c.RetryConfig.MaxAttempts, msg.Topic, string(msg.Key))
	if c.DLQPublisher != nil {
		dlqMessage := models.DLQMessage{
			OriginalTopic: msg.Topic,
			Key:           string(msg.Key),
			Value:         string(msg.Value),
			Timestamp:     time.Now().UTC(),
			Attempts:      c.RetryConfig.MaxAttempts,
		}
		err := c.DLQPublisher.Publish(ctx, models.PaymentsDLQTopic, dlqMessage)
		if err != nil {
			logrus.Errorf("Failed to send message to DLQ: %v", err)
		} else {
			logrus.Infof("Message sent to DLQ: original topic=%s, key=%s", msg.Topic, string(msg.Key))
		}
	}
}

// Close waits for the listeners to stop and closes the readers.
func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.wg.Wait()
	return errors.Join(errs...)
}
