// Package cart holds a customer's pending selections before checkout.
//
// Each Item freezes the unit price (sale price, or daily rent price) at the
// moment it is added, so later catalog price changes do not affect an open cart.
package cart
