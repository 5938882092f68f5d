package commands

import (
	"context"

	"sales/internal/core/domain/model/dealer"
)

// CreateDealerCommandHandler registers a dealer. Emails are unique across dealers.
type CreateDealerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateDealerCommandHandler creates a handler backed by the catalog unit of work.
func NewCreateDealerCommandHandler(uowFactory CatalogUoWFactory) CreateDealerCommandHandler {
	return CreateDealerCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrValueIsInvalid when the email is already registered.
func (h CreateDealerCommandHandler) Handle(ctx context.Context, command CreateDealerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	d, err := dealer.NewDealer(command.DealerID(), command.Name(), command.Email(), command.Phone(), command.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DealerRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
