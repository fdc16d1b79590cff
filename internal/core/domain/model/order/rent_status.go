package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// RentStatus is the lifecycle state of a rental booking.
//
//	Pending ──> Approved ──> Shipped ──> Active ──> Returned
//	                                       │           ^
//	                                       └─> Overdue ┘
//
// Pending, Approved and Shipped may also jump straight to Active (the
// delivery was confirmed) or to Cancelled. Returned and Cancelled are
// terminal and put the quantity back in stock.
type RentStatus int

const (
	RentUnknown RentStatus = iota
	RentPending
	RentApproved
	RentShipped
	RentActive
	RentReturned
	RentOverdue
	RentCancelled
)

func getRentStatusStrings() map[RentStatus]string {
	return map[RentStatus]string{
		RentPending:   "Pending",
		RentApproved:  "Approved",
		RentShipped:   "Shipped",
		RentActive:    "Active",
		RentReturned:  "Returned",
		RentOverdue:   "Overdue",
		RentCancelled: "Cancelled",
	}
}

func getRentTransitions() map[RentStatus][]RentStatus {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[RentStatus][]RentStatus{
		RentPending:  {RentApproved, RentShipped, RentActive, RentCancelled},
		RentApproved: {RentShipped, RentActive, RentCancelled},
		RentShipped:  {RentActive, RentCancelled},
		RentActive:   {RentReturned, RentOverdue},
		RentOverdue:  {RentReturned},
	}
}

func (s RentStatus) Validate() error {
	if _, ok := getRentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("rent status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s RentStatus) String() string {
	if str, ok := getRentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func ParseRentStatus(s string) (RentStatus, error) {
	for status, name := range getRentStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return RentUnknown, errs.NewValueIsInvalidErrorWithCause("rent status", fmt.Errorf("%q is not a valid status", s))
}

func (s RentStatus) IsTerminal() bool {
	return s == RentReturned || s == RentCancelled
}

// Restocks reports whether entering s puts the reserved quantity back.
func (s RentStatus) Restocks() bool {
	return s.IsTerminal()
}

// IsOut reports whether the goods are with the customer or on their way.
func (s RentStatus) IsOut() bool {
	return s == RentShipped || s == RentActive || s == RentOverdue
}

func (s RentStatus) CanTransitionTo(to RentStatus) bool {
	for _, next := range getRentTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo returns to when the edge s -> to exists.
func (s RentStatus) TransitionTo(to RentStatus) (RentStatus, error) {
	if err := to.Validate(); err != nil {
		return RentUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return RentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"rent status",
			fmt.Errorf("%s cannot move to %s", s, to),
		)
	}
	return to, nil
}
