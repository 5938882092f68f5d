// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"errors"
	"time"

	"sales/internal/core/ports"
	"sales/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const (
	eventTypeHeader = "event-type"
	messageIDHeader = "message-id"
)

var ErrTopicIsRequired = errs.NewValueIsRequiredError("kafka topic")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher implements ports.EventPublisher.
// Messages are keyed by order id, so every event of one order lands on the same partition
// and consumers see its transitions in order.
type OrderEventPublisher struct {
	writer messageWriter
}

func NewOrderEventPublisher(brokers []string, topic string) (*OrderEventPublisher, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("kafka brokers")
	}
	if topic == "" {
		return nil, ErrTopicIsRequired
	}

	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireAll,
		},
	}, nil
}

func newOrderEventPublisherWithWriter(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

// Publish writes all messages in one batch. It returns only after the brokers acknowledged them.
func (p *OrderEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, kafka.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafka.Header{
				{Key: eventTypeHeader, Value: []byte(m.EventType)},
				{Key: messageIDHeader, Value: []byte(m.ID.String())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return errs.NewTimeoutError("publish order events", err)
		}
		return errs.NewStorageError("publish order events", err)
	}

	return nil
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
