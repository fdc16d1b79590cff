// Package order provides the Order aggregate created at checkout and the two
// kinds of line items it owns.
//
// The package includes:
//   - Order: groups the line items of one checkout and records their events
//   - SaleItem with SaleStatus: a purchase line and its transition table
//   - RentBooking with RentStatus: a rental line, its transition table and late fee
//   - ShippingAddress: the destination captured at checkout
//
// Key business rules:
//   - Every line reserves its quantity when the order is placed
//   - Entering Returned or Cancelled releases the quantity exactly once
//   - Statuses move only along their adjacency tables
//   - Confirming the delivery activates every rental still on its way
//
// Stock is not touched here. Transitions return StockMovement values which the
// application layer applies through the stock ledger in the same transaction
// as the status write.
package order
