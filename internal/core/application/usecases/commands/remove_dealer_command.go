package commands

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrRemoveDealerCommandIsNotConstructed = errors.New(
	"RemoveDealerCommand must be created via NewRemoveDealerCommand constructor",
)

// RemoveDealerCommand deletes a dealer that has no orders.
type RemoveDealerCommand struct {
	dealerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewRemoveDealerCommand(dealerID kernel.UUID) (RemoveDealerCommand, error) {
	if err := dealerID.Validate(); err != nil {
		return RemoveDealerCommand{}, err
	}
	return RemoveDealerCommand{dealerID: dealerID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveDealerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDealerCommandIsNotConstructed)
}

func (c RemoveDealerCommand) DealerID() kernel.UUID {
	return c.dealerID
}

// RemoveDealerCommandHandler fails with errs.ErrObjectIsReferenced while orders reference the dealer.
type RemoveDealerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveDealerCommandHandler creates a handler backed by the catalog unit of work.
func NewRemoveDealerCommandHandler(uowFactory CatalogUoWFactory) RemoveDealerCommandHandler {
	return RemoveDealerCommandHandler{uowFactory: uowFactory}
}

func (h RemoveDealerCommandHandler) Handle(ctx context.Context, command RemoveDealerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DealerRepository().Delete(ctx, command.DealerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
