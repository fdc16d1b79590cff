package agent

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrVehicleNumberIsRequired is returned when an agent is created without a plate.
	ErrVehicleNumberIsRequired = errs.NewValueIsRequiredError("vehicle number")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
	// ErrAgentIsInactive is returned when work is given to an agent that is off duty.
	ErrAgentIsInactive = errs.NewValueIsInvalidErrorWithCause("agent", errors.New("agent is not active"))
)

// Agent is a delivery agent. It is an aggregate root referenced by deliveries
// through its ID.
//
// Business rules:
//   - Agent must have a valid ID, a backing user and a vehicle number
//   - A new agent starts active
//   - Only an active agent can take a delivery (see EnsureActive)
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// userID is the account the agent signs in with
	userID kernel.UUID
	// vehicleNumber is the registration plate of the vehicle
	vehicleNumber string
	// vehicleType is what the agent drives or rides
	vehicleType VehicleType
	// active reports whether the agent currently accepts deliveries
	active bool
	// joinedAt is when the agent was registered
	joinedAt time.Time

	isConstructed bool
}

// NewAgent registers a new, active agent for an existing user.
//
// Example:
//
//	a, err := agent.NewAgent(kernel.NewUUID(), userID, "KA-01-1234", agent.VehicleBike, time.Now())
//	if err != nil {
//	    return err
//	}
func NewAgent(
	id, userID kernel.UUID,
	vehicleNumber string,
	vehicleType VehicleType,
	joinedAt time.Time,
) (*Agent, error) {
	return RestoreAgent(id, userID, vehicleNumber, vehicleType, true, joinedAt)
}

// RestoreAgent rebuilds an agent from persistence, keeping its active flag.
func RestoreAgent(
	id, userID kernel.UUID,
	vehicleNumber string,
	vehicleType VehicleType,
	active bool,
	joinedAt time.Time,
) (*Agent, error) {
	a := &Agent{
		active:        active,
		joinedAt:      joinedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUserID(userID),
		a.setVehicleNumber(vehicleNumber),
		a.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks the agent was built by a constructor.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Agent) ID() kernel.UUID { return a.id }
func (a *Agent) UserID() kernel.UUID { return a.userID }
func (a *Agent) VehicleNumber() string { return a.vehicleNumber }
func (a *Agent) VehicleType() VehicleType { return a.vehicleType }
func (a *Agent) IsActive() bool { return a.active }
func (a *Agent) JoinedAt() time.Time { return a.joinedAt }

func (a *Agent) Activate() { a.active = true }
func (a *Agent) Deactivate() { a.active = false }

// SetActive toggles availability.
func (a *Agent) SetActive(active bool) {
	a.active = active
}

// EnsureActive returns ErrAgentIsInactive for an agent that is off duty.
func (a *Agent) EnsureActive() error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.active {
		return ErrAgentIsInactive
	}
	return nil
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	a.userID = userID
	return nil
}

func (a *Agent) setVehicleNumber(number string) error {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return ErrVehicleNumberIsRequired
	}
	a.vehicleNumber = number
	return nil
}

func (a *Agent) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	a.vehicleType = vehicleType
	return nil
}
