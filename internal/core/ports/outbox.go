package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges messages written by the order repository.
type OutboxRepository interface {
	// GetUnpublished locks up to limit unpublished messages, oldest first.
	// Rows locked by a concurrent relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the messages as published.
	MarkPublished(ctx context.Context, ids ...kernel.UUID) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
