package commands

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a product together with its inventory row.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	sku          string
	name         string
	description  string
	price        kernel.Money
	initialStock int

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	sku, name, description string,
	price kernel.Money,
	initialStock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setSKU(sku),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setInitialStock(initialStock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) SKU() string {
	return c.sku
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

func (c CreateProductCommand) InitialStock() int {
	return c.initialStock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return product.ErrSKUIsRequired
	}
	c.sku = sku
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return product.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}

func (c *CreateProductCommand) setInitialStock(initialStock int) error {
	if initialStock < 0 {
		return errs.NewValueIsOutOfRangeError("initial stock", initialStock, 0, "unbounded")
	}
	c.initialStock = initialStock
	return nil
}
