package order

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
)

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	phone   string
	street  string
	city    string
	state   string
	zipCode string
}

func NewShippingAddress(phone, street, city, state, zipCode string) (ShippingAddress, error) {
	a := ShippingAddress{
		phone:   strings.TrimSpace(phone),
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		zipCode: strings.TrimSpace(zipCode),
	}

	if err := errors.Join(
		required("phone", a.phone),
		required("address", a.street),
		required("city", a.city),
		required("zip code", a.zipCode),
	); err != nil {
		return ShippingAddress{}, err
	}

	return a, nil
}

func (a ShippingAddress) Phone() string { return a.phone }
func (a ShippingAddress) Street() string { return a.street }
func (a ShippingAddress) City() string { return a.city }
func (a ShippingAddress) State() string { return a.state }
func (a ShippingAddress) ZipCode() string { return a.zipCode }

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
