package commands

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/dealer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
)

var ErrCreateDealerCommandIsNotConstructed = errors.New(
	"CreateDealerCommand must be created via NewCreateDealerCommand constructor",
)

// CreateDealerCommand registers a dealer. Emails are unique across dealers.
type CreateDealerCommand struct {
	dealerID kernel.UUID
	name     string
	email    string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

func NewCreateDealerCommand(dealerID kernel.UUID, name, email, phone, address string) (CreateDealerCommand, error) {
	var nameErr, emailErr error
	if strings.TrimSpace(name) == "" {
		nameErr = dealer.ErrNameIsRequired
	}
	if strings.TrimSpace(email) == "" {
		emailErr = dealer.ErrEmailIsRequired
	}

	if err := errors.Join(dealerID.Validate(), nameErr, emailErr); err != nil {
		return CreateDealerCommand{}, err
	}

	return CreateDealerCommand{
		dealerID: dealerID,
		name:     name,
		email:    email,
		phone:    phone,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDealerCommand) Validate() error {
	return c.guard.Validate(ErrCreateDealerCommandIsNotConstructed)
}

func (c CreateDealerCommand) DealerID() kernel.UUID { return c.dealerID }
func (c CreateDealerCommand) Name() string          { return c.name }
func (c CreateDealerCommand) Email() string         { return c.email }
func (c CreateDealerCommand) Phone() string         { return c.phone }
func (c CreateDealerCommand) Address() string       { return c.address }
