package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrMarkOverdueRentalsCommandIsNotConstructed = errors.New(
	"MarkOverdueRentalsCommand must be created via NewMarkOverdueRentalsCommand constructor",
)

// MarkOverdueRentalsCommand triggers the sweep that flags Active rentals
// whose period has ended.
type MarkOverdueRentalsCommand struct {
	guard guard.ConstructorGuard
}

func NewMarkOverdueRentalsCommand() MarkOverdueRentalsCommand {
	return MarkOverdueRentalsCommand{guard: guard.NewConstructorGuard()}
}

func (c MarkOverdueRentalsCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueRentalsCommandIsNotConstructed)
}
