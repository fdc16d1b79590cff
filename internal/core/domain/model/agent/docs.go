// Package agent provides the DeliveryAgent aggregate: a user who carries
// orders to customers.
//
// The package includes:
//   - Agent: identity, vehicle and availability of a delivery agent
//   - VehicleType: the closed set of vehicles an agent may use
//
// Key business rules:
//   - Every agent is backed by exactly one user account
//   - Only active agents may be assigned or dispatched to a delivery
//   - Deactivating an agent does not touch deliveries already assigned
package agent
