package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand converts a customer's cart into an order shipped to the
// given address.
//
// Example:
//
//	address, _ := order.NewShippingAddress(phone, street, city, state, zip)
//	orderID := kernel.NewUUID()
//	cmd, err := NewCheckoutCommand(customerID, orderID, kernel.NewUUID(), address)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed and awaiting dispatch", orderID)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	orderID    kernel.UUID
	deliveryID kernel.UUID
	address    order.ShippingAddress

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates identifiers and requires a shipping address.
func NewCheckoutCommand(
	customerID, orderID, deliveryID kernel.UUID,
	address order.ShippingAddress,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setOrderID(orderID),
		cmd.setDeliveryID(deliveryID),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) CustomerID() kernel.UUID { return c.customerID }

// OrderID is the identifier the new order will get.
func (c CheckoutCommand) OrderID() kernel.UUID { return c.orderID }

func (c CheckoutCommand) DeliveryID() kernel.UUID { return c.deliveryID }

func (c CheckoutCommand) Address() order.ShippingAddress { return c.address }

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CheckoutCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
