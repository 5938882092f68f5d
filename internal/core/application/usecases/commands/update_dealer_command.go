package commands

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/dealer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrUpdateDealerCommandIsNotConstructed = errors.New(
	"UpdateDealerCommand must be created via NewUpdateDealerCommand constructor",
)

// UpdateDealerCommand replaces the contact details of a dealer. Orders already placed
// keep referencing the dealer by id.
type UpdateDealerCommand struct {
	dealerID kernel.UUID
	name     string
	email    string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

func NewUpdateDealerCommand(dealerID kernel.UUID, name, email, phone, address string) (UpdateDealerCommand, error) {
	var nameErr, emailErr error
	if strings.TrimSpace(name) == "" {
		nameErr = dealer.ErrNameIsRequired
	}
	if strings.TrimSpace(email) == "" {
		emailErr = dealer.ErrEmailIsRequired
	}

	if err := errors.Join(dealerID.Validate(), nameErr, emailErr); err != nil {
		return UpdateDealerCommand{}, err
	}

	return UpdateDealerCommand{
		dealerID: dealerID,
		name:     name,
		email:    email,
		phone:    phone,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDealerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDealerCommandIsNotConstructed)
}

func (c UpdateDealerCommand) DealerID() kernel.UUID { return c.dealerID }
func (c UpdateDealerCommand) Name() string          { return c.name }
func (c UpdateDealerCommand) Email() string         { return c.email }
func (c UpdateDealerCommand) Phone() string         { return c.phone }
func (c UpdateDealerCommand) Address() string       { return c.address }
