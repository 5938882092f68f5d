// Package product holds the catalogue record that orders reference and take price snapshots from.
package product

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

const maxSKULength = 64

var (
	// ErrSKUIsRequired is returned for a blank SKU.
	ErrSKUIsRequired = errs.NewValueIsRequiredError("sku")
	// ErrNameIsRequired is returned for a blank name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is identified by its unique SKU and carries the current unit price.
type Product struct {
	id          kernel.UUID
	sku         string
	name        string
	description string
	price       kernel.Money
	guard       guard.ConstructorGuard
}

// NewProduct creates a product. Leading and trailing blanks are trimmed from text fields.
func NewProduct(id kernel.UUID, sku, name, description string, price kernel.Money) (*Product, error) {
	p := &Product{description: strings.TrimSpace(description), guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rehydrates a persisted product.
func RestoreProduct(id kernel.UUID, sku, name, description string, price kernel.Money) (*Product, error) {
	return NewProduct(id, sku, name, description, price)
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

// ChangePrice sets a new current price. Order items keep the price they were created with.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return ErrSKUIsRequired
	}
	if len(sku) > maxSKULength {
		return errs.NewValueIsOutOfRangeError("sku length", len(sku), 1, maxSKULength)
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
