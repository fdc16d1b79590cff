package catalog

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const DefaultColor = "Standard"

// rentPricePercent is the share of the sale price charged per rental day
// when a rentable variant has no explicit daily rate.
const rentPricePercent = 10

var ErrVariantIsNotConstructed = errors.New("Variant must be created via Product.AddVariant or RestoreVariant")

// Variant is one SKU of a product. Stock is a snapshot of the ledger taken
// when the product was loaded.
type Variant struct {
	id              kernel.UUID
	productID       kernel.UUID
	size            string
	color           string
	stock           int
	salePrice       *kernel.Money
	rentPricePerDay *kernel.Money

	isConstructed bool
}

func newVariant(
	id, productID kernel.UUID,
	size, color string,
	stock int,
	salePrice, rentPricePerDay *kernel.Money,
) (*Variant, error) {
	if color == "" {
		color = DefaultColor
	}

	v := &Variant{
		productID:       productID,
		color:           color,
		salePrice:       salePrice,
		rentPricePerDay: rentPricePerDay,
		isConstructed:   true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setSize(size),
		v.setStock(stock),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVariant rebuilds a variant from persistence.
func RestoreVariant(
	id, productID kernel.UUID,
	size, color string,
	stock int,
	salePrice, rentPricePerDay *kernel.Money,
) (*Variant, error) {
	return newVariant(id, productID, size, color, stock, salePrice, rentPricePerDay)
}

func (v *Variant) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVariantIsNotConstructed
	}
	return nil
}

func (v *Variant) ID() kernel.UUID { return v.id }
func (v *Variant) ProductID() kernel.UUID { return v.productID }
func (v *Variant) Size() string { return v.size }
func (v *Variant) Color() string { return v.color }
func (v *Variant) Stock() int { return v.stock }
func (v *Variant) SalePrice() *kernel.Money { return v.salePrice }
func (v *Variant) RentPricePerDay() *kernel.Money { return v.rentPricePerDay }

func (v *Variant) IsForSale() bool {
	return v.salePrice != nil && v.salePrice.IsPositive()
}

func (v *Variant) IsForRent() bool {
	return v.rentPricePerDay != nil && v.rentPricePerDay.IsPositive()
}

// ChangeSalePrice replaces the sale price. Prices already captured in carts
// and orders are unaffected.
func (v *Variant) ChangeSalePrice(price *kernel.Money) {
	v.salePrice = price
}

func (v *Variant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Variant) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	v.size = size
	return nil
}

func (v *Variant) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}
	v.stock = stock
	return nil
}
