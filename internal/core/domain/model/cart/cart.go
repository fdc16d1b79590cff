package cart

import (
	"fmt"
	"time"

	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// RentalNoticeDays is how far ahead of today a rental must start.
const RentalNoticeDays = 2

// Cart is a customer's basket. It is identified by the customer it belongs to.
type Cart struct {
	customerID kernel.UUID
	items      []*Item
}

func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{customerID: customerID}, nil
}

func RestoreCart(customerID kernel.UUID, items []*Item) (*Cart, error) {
	c, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	c.items = items
	return c, nil
}

func (c *Cart) CustomerID() kernel.UUID { return c.customerID }

func (c *Cart) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total sums the cost of every item.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney
	for _, item := range c.items {
		total = total.Add(item.Cost())
	}
	return total
}

// Add puts a variant in the cart, or increases the quantity of an identical
// selection already there. A nil period means a purchase.
//
// Purchases must fit in the stock snapshot of the variant. Rentals need a
// rentable product with a daily rate and a period starting no earlier than
// RentalNoticeDays from today.
func (c *Cart) Add(
	itemID kernel.UUID,
	product *catalog.Product,
	variantID kernel.UUID,
	quantity int,
	period *kernel.DateRange,
	now time.Time,
) (*Item, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}
	variant, err := product.Variant(variantID)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	kind := Sale
	var rentalPeriod kernel.DateRange
	var price kernel.Money

	if period != nil {
		kind = Rental
		rentalPeriod = *period
		if price, err = rentalPrice(product, variant, rentalPeriod, now); err != nil {
			return nil, err
		}
	} else if price, err = salePrice(variant); err != nil {
		return nil, err
	}

	for _, item := range c.items {
		if !item.sameSelection(variantID, kind, rentalPeriod) {
			continue
		}
		if kind == Sale {
			if err = checkStock(variant, item.quantity+quantity); err != nil {
				return nil, err
			}
		}
		item.quantity += quantity
		return item, nil
	}

	if kind == Sale {
		if err = checkStock(variant, quantity); err != nil {
			return nil, err
		}
	}

	item, err := RestoreItem(itemID, variantID, kind, rentalPeriod, quantity, price, now)
	if err != nil {
		return nil, err
	}
	c.items = append(c.items, item)
	return item, nil
}

// UpdateQuantity sets an item's quantity; zero or less removes it.
func (c *Cart) UpdateQuantity(itemID kernel.UUID, quantity int) error {
	if quantity <= 0 {
		return c.Remove(itemID)
	}
	item, err := c.item(itemID)
	if err != nil {
		return err
	}
	item.quantity = quantity
	return nil
}

func (c *Cart) Remove(itemID kernel.UUID) error {
	for i, item := range c.items {
		if item.id.IsEqual(itemID) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("cart item", itemID.String())
}

// Clear empties the cart after checkout.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) item(itemID kernel.UUID) (*Item, error) {
	for _, item := range c.items {
		if item.id.IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("cart item", itemID.String())
}

func salePrice(variant *catalog.Variant) (kernel.Money, error) {
	if !variant.IsForSale() {
		return kernel.Money{}, errs.NewValueIsInvalidError("variant is not for sale")
	}
	return *variant.SalePrice(), nil
}

func rentalPrice(
	product *catalog.Product,
	variant *catalog.Variant,
	period kernel.DateRange,
	now time.Time,
) (kernel.Money, error) {
	if !product.IsRentable() || !variant.IsForRent() {
		return kernel.Money{}, errs.NewValueIsInvalidError("variant is not for rent")
	}

	today := kernel.Date(now)
	if period.Start().Before(today) {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("start date",
			fmt.Errorf("%s is in the past", period.Start().Format(time.DateOnly)))
	}
	earliest := today.AddDate(0, 0, RentalNoticeDays)
	if period.Start().Before(earliest) {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("start date",
			fmt.Errorf("rentals must be booked at least %d days in advance, earliest start is %s",
				RentalNoticeDays, earliest.Format(time.DateOnly)))
	}

	return *variant.RentPricePerDay(), nil
}

func checkStock(variant *catalog.Variant, wanted int) error {
	if wanted > variant.Stock() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("only %d left in stock", variant.Stock()))
	}
	return nil
}
