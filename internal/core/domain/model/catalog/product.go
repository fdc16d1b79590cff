package catalog

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is the catalog aggregate root; it owns its variants.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    Category
	subCategory string
	rentable    bool
	createdAt   time.Time
	variants    []*Variant

	isConstructed bool
}

// NewProduct creates a product without variants.
func NewProduct(
	id kernel.UUID,
	name, description string,
	category Category,
	subCategory string,
	rentable bool,
	createdAt time.Time,
) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(description),
		subCategory:   strings.TrimSpace(subCategory),
		rentable:      rentable,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product and its variants from persistence.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	category Category,
	subCategory string,
	rentable bool,
	createdAt time.Time,
	variants []*Variant,
) (*Product, error) {
	p, err := NewProduct(id, name, description, category, subCategory, rentable, createdAt)
	if err != nil {
		return nil, err
	}

	for _, v := range variants {
		if err = v.Validate(); err != nil {
			return nil, err
		}
	}
	p.variants = variants

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID { return p.id }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() Category { return p.category }
func (p *Product) SubCategory() string { return p.subCategory }
func (p *Product) IsRentable() bool { return p.rentable }
func (p *Product) CreatedAt() time.Time { return p.createdAt }

func (p *Product) Variants() []*Variant {
	out := make([]*Variant, len(p.variants))
	copy(out, p.variants)
	return out
}

// Variant finds a variant by id.
func (p *Product) Variant(id kernel.UUID) (*Variant, error) {
	for _, v := range p.variants {
		if v.ID().IsEqual(id) {
			return v, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("variant", id.String())
}

// AddVariant attaches a new SKU. A rentable product without an explicit daily
// rate rents at 10% of the sale price; a product that is not rentable never
// carries one.
func (p *Product) AddVariant(
	id kernel.UUID,
	size, color string,
	stock int,
	salePrice, rentPricePerDay *kernel.Money,
) (*Variant, error) {
	switch {
	case !p.rentable:
		rentPricePerDay = nil
	case rentPricePerDay == nil && salePrice != nil:
		derived := salePrice.Percent(rentPricePercent)
		rentPricePerDay = &derived
	}

	v, err := newVariant(id, p.id, size, color, stock, salePrice, rentPricePerDay)
	if err != nil {
		return nil, err
	}

	for _, existing := range p.variants {
		if strings.EqualFold(existing.size, v.size) && strings.EqualFold(existing.color, v.color) {
			return nil, errs.NewValueIsInvalidError("variant " + v.size + "/" + v.color + " already exists")
		}
	}

	p.variants = append(p.variants, v)
	return v, nil
}

// RemoveVariant drops a variant from the product.
func (p *Product) RemoveVariant(id kernel.UUID) error {
	for i, v := range p.variants {
		if v.ID().IsEqual(id) {
			p.variants = append(p.variants[:i], p.variants[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("variant", id.String())
}

// IsForSale reports whether any variant can be bought.
func (p *Product) IsForSale() bool {
	for _, v := range p.variants {
		if v.IsForSale() {
			return true
		}
	}
	return false
}

// IsForRent reports whether the product is rentable and any variant has a daily rate.
func (p *Product) IsForRent() bool {
	if !p.rentable {
		return false
	}
	for _, v := range p.variants {
		if v.IsForRent() {
			return true
		}
	}
	return false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
