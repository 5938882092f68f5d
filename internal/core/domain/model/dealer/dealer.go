// Package dealer holds the dealer contact record that orders are placed for.
package dealer

import (
	"errors"
	"net/mail"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned for a blank dealer name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned for a blank email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrDealerIsNotConstructed is returned when using an improperly initialized Dealer.
	ErrDealerIsNotConstructed = errors.New("Dealer must be created via NewDealer constructor")
)

// Dealer is identified by its unique email. Emails are stored lower-cased.
type Dealer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string
	guard   guard.ConstructorGuard
}

func NewDealer(id kernel.UUID, name, email, phone, address string) (*Dealer, error) {
	d := &Dealer{
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDealer rehydrates a persisted dealer.
func RestoreDealer(id kernel.UUID, name, email, phone, address string) (*Dealer, error) {
	return NewDealer(id, name, email, phone, address)
}

func (d *Dealer) Validate() error {
	if d == nil {
		return ErrDealerIsNotConstructed
	}
	return d.guard.Validate(ErrDealerIsNotConstructed)
}

func (d *Dealer) ID() kernel.UUID {
	return d.id
}

func (d *Dealer) Name() string {
	return d.name
}

func (d *Dealer) Email() string {
	return d.email
}

func (d *Dealer) Phone() string {
	return d.phone
}

func (d *Dealer) Address() string {
	return d.address
}

// ChangeContact replaces every contact field of the dealer.
//
// Parameters:
//   - name: required, surrounding whitespace is trimmed
//   - email: required single address without a display name, stored lower-cased
//   - phone, address: optional
//
// Returns a joined error naming every invalid field. On error the dealer is unchanged.
func (d *Dealer) ChangeContact(name, email, phone, address string) error {
	if err := d.Validate(); err != nil {
		return err
	}

	next := *d
	if err := errors.Join(next.setName(name), next.setEmail(email)); err != nil {
		return err
	}
	next.phone = strings.TrimSpace(phone)
	next.address = strings.TrimSpace(address)

	*d = next
	return nil
}

func (d *Dealer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dealer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Dealer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		if err == nil {
			err = errors.New("display names are not allowed")
		}
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	d.email = strings.ToLower(addr.Address)
	return nil
}
