package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. Instances are never shared
// between goroutines.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a sales operation. Stock deductions, the order
// row, its items and outbox messages written through its repositories after Begin are
// committed or discarded together.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards every write since Begin. It fails when no transaction is open,
	// so a deferred Rollback after Commit is harmless.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	InventoryRepository() InventoryRepository
	ProductRepository() ProductRepository
	DealerRepository() DealerRepository
	OrderNumberSequence() OrderNumberSequence
	OutboxRepository() OutboxRepository
}
