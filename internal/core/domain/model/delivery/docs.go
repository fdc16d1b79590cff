// Package delivery provides the Delivery task that moves one order to its
// customer, and the one-time code the customer reads out to the agent to
// confirm the hand-over.
//
// Key business rules:
//   - Every order has exactly one delivery, created Pending at checkout
//   - Only the assigned agent may start, fail or complete a delivery
//   - A delivery is completed only with the code currently issued for it
//   - No code is ever issued twice for the same delivery
package delivery
