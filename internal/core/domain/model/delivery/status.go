package delivery

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status of a delivery. Delivered and Failed are terminal.
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusOutForDelivery
	StatusDelivered
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:        "Pending",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusFailed:         "Failed",
	}
}

func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal statuses have no outgoing edges
	return map[Status][]Status{
		StatusPending:        {StatusOutForDelivery, StatusFailed},
		StatusOutForDelivery: {StatusDelivered, StatusFailed},
	}
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus accepts the display name ("Out for Delivery") or its
// snake_case form ("out_for_delivery").
func ParseStatus(s string) (Status, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), "_", " ")
	for status, name := range getStatusStrings() {
		if strings.EqualFold(name, normalized) {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusFailed
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, next := range getTransitions()[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(to) {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%s cannot move to %s", s, to),
		)
	}
	return to, nil
}
