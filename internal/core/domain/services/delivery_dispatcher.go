package services

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

// ErrAgentNotFound is returned when no active agent is available for dispatch.
var ErrAgentNotFound = errors.New("agent not found")

// AgentWorkload is a candidate agent and the number of deliveries it has
// not finished yet.
type AgentWorkload struct {
	Agent          *agent.Agent
	OpenDeliveries int
}

// DeliveryDispatcher hands a Pending delivery to an agent.
//
// Key responsibilities:
//   - Picking the active agent with the fewest open deliveries when the admin names none
//   - Moving the delivery Out for Delivery with a fresh code
//
// Example usage:
//
//	dispatcher := NewDeliveryDispatcher(kernel.RandomCodeGenerator{})
//	assigned, err := dispatcher.DispatchToLeastBusy(d, workloads, now)
//	if errors.Is(err, ErrAgentNotFound) {
//	    // every agent is off duty
//	}
type DeliveryDispatcher struct {
	codes kernel.CodeGenerator
}

func NewDeliveryDispatcher(codes kernel.CodeGenerator) DeliveryDispatcher {
	return DeliveryDispatcher{codes: codes}
}

// Dispatch sends d out with the given agent.
func (s DeliveryDispatcher) Dispatch(d *delivery.Delivery, a *agent.Agent, now time.Time) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.Dispatch(a, s.codes, now)
}

// DispatchToLeastBusy picks an agent from candidates and dispatches d to it.
func (s DeliveryDispatcher) DispatchToLeastBusy(
	d *delivery.Delivery,
	candidates []AgentWorkload,
	now time.Time,
) (*agent.Agent, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	best, err := s.findLeastBusyAgent(candidates)
	if err != nil {
		return nil, err
	}

	if err = d.Dispatch(best, s.codes, now); err != nil {
		return nil, err
	}
	return best, nil
}

// findLeastBusyAgent returns the active candidate with the fewest open
// deliveries. Ties go to the earlier candidate.
func (s DeliveryDispatcher) findLeastBusyAgent(candidates []AgentWorkload) (*agent.Agent, error) {
	var (
		best     *agent.Agent
		bestLoad int
	)

	for _, c := range candidates {
		if err := c.Agent.Validate(); err != nil {
			return nil, err
		}
		if !c.Agent.IsActive() {
			continue
		}
		if best == nil || c.OpenDeliveries < bestLoad {
			best = c.Agent
			bestLoad = c.OpenDeliveries
		}
	}

	if best == nil {
		return nil, ErrAgentNotFound
	}
	return best, nil
}
