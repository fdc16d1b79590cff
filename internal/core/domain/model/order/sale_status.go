package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// SaleStatus is the fulfillment state of a purchased line item.
//
//	Pending   -> Shipped, Delivered, Cancelled
//	Shipped   -> Delivered, Returned, Cancelled
//	Delivered -> Returned
//
// Returned and Cancelled are terminal and put the quantity back in stock.
type SaleStatus int

const (
	SaleUnknown SaleStatus = iota
	SalePending
	SaleShipped
	SaleDelivered
	SaleReturned
	SaleCancelled
)

func getSaleStatusStrings() map[SaleStatus]string {
	return map[SaleStatus]string{
		SalePending:   "Pending",
		SaleShipped:   "Shipped",
		SaleDelivered: "Delivered",
		SaleReturned:  "Returned",
		SaleCancelled: "Cancelled",
	}
}

func getSaleTransitions() map[SaleStatus][]SaleStatus {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[SaleStatus][]SaleStatus{
		SalePending:   {SaleShipped, SaleDelivered, SaleCancelled},
		SaleShipped:   {SaleDelivered, SaleReturned, SaleCancelled},
		SaleDelivered: {SaleReturned},
	}
}

func (s SaleStatus) Validate() error {
	if _, ok := getSaleStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sale status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s SaleStatus) String() string {
	if str, ok := getSaleStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func ParseSaleStatus(s string) (SaleStatus, error) {
	for status, name := range getSaleStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return SaleUnknown, errs.NewValueIsInvalidErrorWithCause("sale status", fmt.Errorf("%q is not a valid status", s))
}

func (s SaleStatus) IsTerminal() bool {
	return s == SaleReturned || s == SaleCancelled
}

// Restocks reports whether entering s puts the reserved quantity back.
func (s SaleStatus) Restocks() bool {
	return s.IsTerminal()
}

func (s SaleStatus) CanTransitionTo(to SaleStatus) bool {
	for _, next := range getSaleTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns to when the edge s -> to exists.
func (s SaleStatus) TransitionTo(to SaleStatus) (SaleStatus, error) {
	if err := to.Validate(); err != nil {
		return SaleUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return SaleUnknown, errs.NewValueIsInvalidErrorWithCause(
			"sale status",
			fmt.Errorf("%s cannot move to %s", s, to),
		)
	}
	return to, nil
}
