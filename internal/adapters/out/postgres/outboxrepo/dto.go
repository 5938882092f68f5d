package outboxrepo

import (
	"encoding/json"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is a row of outbox_messages.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType   string
	AggregateID uuid.UUID `gorm:"type:uuid"`
	Payload     []byte    `gorm:"type:jsonb"`
	OccurredAt  time.Time
	PublishedAt *time.Time
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// StatusChangedPayload is the JSON body published for order.StatusChanged.
type StatusChangedPayload struct {
	EventID     string    `json:"eventId"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	DealerID    string    `json:"dealerId"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	TotalAmount string    `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// FromStatusChanged serializes the event into an outbox row.
func FromStatusChanged(event order.StatusChanged) (MessageDTO, error) {
	payload, err := json.Marshal(StatusChangedPayload{
		EventID:     event.EventID.String(),
		OrderID:     event.OrderID.String(),
		OrderNumber: event.OrderNumber.String(),
		DealerID:    event.DealerID.String(),
		From:        event.From.String(),
		To:          event.To.String(),
		TotalAmount: event.TotalAmount.String(),
		OccurredAt:  event.OccurredAt,
	})
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		ID:          event.EventID.Bytes(),
		EventType:   event.Type(),
		AggregateID: event.OrderID.Bytes(),
		Payload:     payload,
		OccurredAt:  event.OccurredAt,
	}, nil
}

func toPort(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		AggregateID: aggregateID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
	}, nil
}
