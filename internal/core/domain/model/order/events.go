package order

import (
	"time"

	"sales/internal/core/domain/model/kernel"
)

// StatusChangedEventType is the event type name written to the outbox.
const StatusChangedEventType = "order.status_changed"

// StatusChanged is raised whenever an order moves to its next lifecycle state.
type StatusChanged struct {
	EventID     kernel.UUID
	OrderID     kernel.UUID
	OrderNumber Number
	DealerID    kernel.UUID
	From        Status
	To          Status
	TotalAmount kernel.Money
	OccurredAt  time.Time
}

// Type returns StatusChangedEventType.
func (StatusChanged) Type() string {
	return StatusChangedEventType
}
