package commands

import (
	"context"
)

// UpdateDealerCommandHandler fails with errs.ErrValueIsInvalid when the new email
// belongs to another dealer.
type UpdateDealerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateDealerCommandHandler creates a handler backed by the catalog unit of work.
func NewUpdateDealerCommandHandler(uowFactory CatalogUoWFactory) UpdateDealerCommandHandler {
	return UpdateDealerCommandHandler{uowFactory: uowFactory}
}

// Handle replaces name, email, phone and address in one statement.
//
// Returns:
//   - errs.ErrObjectNotFound for an unknown dealer
//   - errs.ErrValueIsRequired when the name or email is blank
//   - errs.ErrValueIsInvalid when the email is taken
func (h UpdateDealerCommandHandler) Handle(ctx context.Context, command UpdateDealerCommand) error {
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

	dealerRepo := uow.DealerRepository()

	d, err := dealerRepo.Get(ctx, command.DealerID())
	if err != nil {
		return err
	}

	if err = d.ChangeContact(command.Name(), command.Email(), command.Phone(), command.Address()); err != nil {
		return err
	}

	if err = dealerRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
