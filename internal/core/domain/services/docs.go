// Package services provides domain services that coordinate several
// aggregates in one business step.
//
// The package includes:
//   - OrderPlacer: turns a cart into an order, its delivery and the stock reservations
//   - DeliveryDispatcher: picks the least busy active agent and dispatches a delivery
//   - DeliveryCompleter: confirms a hand-over and activates the order's rentals
//
// None of these services touch persistence. They return what changed and the
// application layer stores it inside one unit of work.
package services
