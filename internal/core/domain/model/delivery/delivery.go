package delivery

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

const maxCodeAttempts = 32

var (
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrCodeMismatch is returned by Complete when the code read out by the
	// customer is not the one currently issued. Nothing changes; retry is allowed.
	ErrCodeMismatch = errs.NewValueIsInvalidErrorWithCause("delivery code", errors.New("code does not match"))
	// ErrNoAgentAssigned is returned when an agent-only action runs on an unassigned delivery.
	ErrNoAgentAssigned = errs.NewValueIsRequiredError("delivery agent")
)

// Delivery is the fulfillment task of one order.
//
// Delivery follows these invariants:
//   - Belongs to exactly one order
//   - Holds a code only while Out for Delivery
//   - Issued codes are remembered so none is repeated
//   - Status only follows the transition table
type Delivery struct {
	kernel.EventRecorder

	id          kernel.UUID
	orderID     kernel.UUID
	agentID     kernel.UUID
	status      Status
	code        string
	issuedCodes []string
	createdAt   time.Time
	deliveredAt *time.Time

	// storedStatus is the status read from persistence; updates are
	// conditional on it.
	storedStatus Status

	isConstructed bool
}

// NewDelivery creates the Pending, unassigned delivery of an order.
func NewDelivery(id, orderID kernel.UUID, createdAt time.Time) (*Delivery, error) {
	d := &Delivery{
		status:        StatusPending,
		storedStatus:  StatusPending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery rebuilds a delivery from persistence. A zero agentID means
// no agent has been assigned yet.
func RestoreDelivery(
	id, orderID, agentID kernel.UUID,
	status Status,
	code string,
	issuedCodes []string,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.agentID = agentID
	d.status = status
	d.storedStatus = status
	d.code = code
	d.issuedCodes = slices.Clone(issuedCodes)
	d.deliveredAt = deliveredAt
	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.UUID { return d.id }
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }
func (d *Delivery) AgentID() kernel.UUID { return d.agentID }
func (d *Delivery) Status() Status { return d.status }
func (d *Delivery) StoredStatus() Status { return d.storedStatus }
func (d *Delivery) Code() string { return d.code }
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }
func (d *Delivery) DeliveredAt() *time.Time { return d.deliveredAt }
func (d *Delivery) IssuedCodes() []string { return slices.Clone(d.issuedCodes) }

// MarkPersisted records the current status as the stored one. Repositories
// call it after a successful write.
func (d *Delivery) MarkPersisted() { d.storedStatus = d.status }

// HasAgent reports whether an agent has been assigned.
func (d *Delivery) HasAgent() bool {
	return d.agentID.Validate() == nil
}

// IsAssignedTo reports whether agentID is the assigned agent.
func (d *Delivery) IsAssignedTo(agentID kernel.UUID) bool {
	return d.HasAgent() && d.agentID.IsEqual(agentID)
}

// AssignAgent pre-assigns an active agent without dispatching. The delivery
// stays Pending until the agent confirms pickup with StartDelivery.
func (d *Delivery) AssignAgent(a *agent.Agent) error {
	if err := a.EnsureActive(); err != nil {
		return err
	}
	if d.status != StatusPending {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("agent can only be assigned while %s, delivery is %s", StatusPending, d.status))
	}
	d.agentID = a.ID()
	return nil
}

// Dispatch assigns an active agent, moves the delivery Out for Delivery and
// issues its first code, all at once.
func (d *Delivery) Dispatch(a *agent.Agent, codes kernel.CodeGenerator, now time.Time) error {
	if err := d.AssignAgent(a); err != nil {
		return err
	}
	return d.startDelivery(codes, now)
}

// StartDelivery is the assigned agent confirming pickup.
func (d *Delivery) StartDelivery(agentID kernel.UUID, codes kernel.CodeGenerator, now time.Time) error {
	if err := d.ensureAssignedTo(agentID); err != nil {
		return err
	}
	return d.startDelivery(codes, now)
}

// ReissueCode replaces the current code while the delivery is Out for
// Delivery. The agent calls it on arrival; the customer receives the new code.
func (d *Delivery) ReissueCode(agentID kernel.UUID, codes kernel.CodeGenerator, now time.Time) error {
	if err := d.ensureAssignedTo(agentID); err != nil {
		return err
	}
	if d.status != StatusOutForDelivery {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("code can only be issued while %s, delivery is %s", StatusOutForDelivery, d.status))
	}
	return d.issueCode(codes, true, now)
}

// Fail marks the delivery Failed. No code is required.
func (d *Delivery) Fail(agentID kernel.UUID, now time.Time) error {
	if err := d.ensureAssignedTo(agentID); err != nil {
		return err
	}
	if err := d.transition(StatusFailed, now); err != nil {
		return err
	}
	d.code = ""
	return nil
}

// Complete confirms the hand-over. The code must match the issued one
// exactly; on mismatch nothing changes and ErrCodeMismatch is returned.
func (d *Delivery) Complete(agentID kernel.UUID, code string, now time.Time) error {
	if err := d.ensureAssignedTo(agentID); err != nil {
		return err
	}
	if !d.status.CanTransitionTo(StatusDelivered) {
		_, err := d.status.TransitionTo(StatusDelivered)
		return err
	}
	if d.code == "" || code != d.code {
		return ErrCodeMismatch
	}

	if err := d.transition(StatusDelivered, now); err != nil {
		return err
	}
	delivered := now.UTC()
	d.deliveredAt = &delivered
	d.code = ""
	return nil
}

func (d *Delivery) startDelivery(codes kernel.CodeGenerator, now time.Time) error {
	if !d.status.CanTransitionTo(StatusOutForDelivery) {
		_, err := d.status.TransitionTo(StatusOutForDelivery)
		return err
	}
	code, err := d.nextCode(codes)
	if err != nil {
		return err
	}
	if err = d.transition(StatusOutForDelivery, now); err != nil {
		return err
	}
	d.setCode(code, false, now)
	return nil
}

func (d *Delivery) issueCode(codes kernel.CodeGenerator, reissued bool, now time.Time) error {
	code, err := d.nextCode(codes)
	if err != nil {
		return err
	}
	d.setCode(code, reissued, now)
	return nil
}

// nextCode draws codes until one was never issued for this delivery.
func (d *Delivery) nextCode(codes kernel.CodeGenerator) (string, error) {
	for range maxCodeAttempts {
		code, err := codes.Generate()
		if err != nil {
			return "", err
		}
		if !slices.Contains(d.issuedCodes, code) {
			return code, nil
		}
	}
	return "", fmt.Errorf("no unused delivery code after %d attempts", maxCodeAttempts)
}

func (d *Delivery) setCode(code string, reissued bool, now time.Time) {
	d.code = code
	d.issuedCodes = append(d.issuedCodes, code)
	d.Record(DeliveryCodeIssued{
		BaseEvent: kernel.NewBaseEvent(EventDeliveryCodeIssued, d.id, now),
		OrderID:   d.orderID,
		AgentID:   d.agentID,
		Code:      code,
		Reissued:  reissued,
	})
}

func (d *Delivery) transition(to Status, now time.Time) error {
	from := d.status
	next, err := from.TransitionTo(to)
	if err != nil {
		return err
	}

	d.status = next
	d.Record(DeliveryStatusChanged{
		BaseEvent: kernel.NewBaseEvent(EventDeliveryStatusChanged, d.id, now),
		OrderID:   d.orderID,
		AgentID:   d.agentID,
		From:      from,
		To:        next,
	})
	return nil
}

func (d *Delivery) ensureAssignedTo(agentID kernel.UUID) error {
	if !d.HasAgent() {
		return ErrNoAgentAssigned
	}
	if !d.agentID.IsEqual(agentID) {
		return errs.NewAccessDeniedError(agentID, "delivery "+d.id.String())
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	d.orderID = orderID
	return nil
}
