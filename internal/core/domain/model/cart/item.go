package cart

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

type ItemKind int

const (
	UnknownKind ItemKind = iota
	Sale
	Rental
)

func (k ItemKind) String() string {
	switch k {
	case Sale:
		return "sale"
	case Rental:
		return "rental"
	default:
		return "unknown"
	}
}

func ParseItemKind(s string) (ItemKind, error) {
	for _, k := range []ItemKind{Sale, Rental} {
		if k.String() == s {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("item kind", fmt.Errorf("%q is not a valid kind", s))
}

func (k ItemKind) Validate() error {
	if k != Sale && k != Rental {
		return errs.NewValueIsInvalidErrorWithCause("item kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

var ErrItemIsNotConstructed = errors.New("Item must be created via Cart.Add or RestoreItem")

// Item is one selection: a variant, bought or rented for a period.
type Item struct {
	id         kernel.UUID
	variantID  kernel.UUID
	kind       ItemKind
	period     kernel.DateRange
	quantity   int
	priceAtAdd kernel.Money
	addedAt    time.Time

	isConstructed bool
}

// RestoreItem rebuilds a cart item from persistence. period is ignored for sale items.
func RestoreItem(
	id, variantID kernel.UUID,
	kind ItemKind,
	period kernel.DateRange,
	quantity int,
	priceAtAdd kernel.Money,
	addedAt time.Time,
) (*Item, error) {
	item := &Item{
		variantID:     variantID,
		priceAtAdd:    priceAtAdd,
		addedAt:       addedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setKind(kind, period),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID { return i.id }
func (i *Item) VariantID() kernel.UUID { return i.variantID }
func (i *Item) Kind() ItemKind { return i.kind }
func (i *Item) IsRental() bool { return i.kind == Rental }
func (i *Item) Quantity() int { return i.quantity }
func (i *Item) PriceAtAdd() kernel.Money { return i.priceAtAdd }
func (i *Item) AddedAt() time.Time { return i.addedAt }

// Period is the rental period; zero for sale items.
func (i *Item) Period() kernel.DateRange { return i.period }

// Cost is price x quantity for a sale and price x days x quantity for a rental.
func (i *Item) Cost() kernel.Money {
	if i.kind == Rental {
		return i.priceAtAdd.MulInt(i.period.Days()).MulInt(i.quantity)
	}
	return i.priceAtAdd.MulInt(i.quantity)
}

func (i *Item) sameSelection(variantID kernel.UUID, kind ItemKind, period kernel.DateRange) bool {
	return i.variantID.IsEqual(variantID) && i.kind == kind && (kind == Sale || i.period.IsEqual(period))
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setKind(kind ItemKind, period kernel.DateRange) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	if kind == Rental && period.IsZero() {
		return errs.NewValueIsRequiredError("rental period")
	}
	i.kind = kind
	if kind == Rental {
		i.period = period
	}
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	i.quantity = quantity
	return nil
}
