package delivery

import "storefront/internal/core/domain/model/kernel"

const (
	EventDeliveryStatusChanged = "delivery.status_changed"
	EventDeliveryCodeIssued    = "delivery.code_issued"
)

type DeliveryStatusChanged struct {
	kernel.BaseEvent
	OrderID kernel.UUID
	AgentID kernel.UUID
	From    Status
	To      Status
}

// DeliveryCodeIssued is recorded every time a fresh code replaces the
// previous one. Reissued is false for the first code of a dispatch.
type DeliveryCodeIssued struct {
	kernel.BaseEvent
	OrderID  kernel.UUID
	AgentID  kernel.UUID
	Code     string
	Reissued bool
}
