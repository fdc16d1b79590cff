// Package catalog models what the storefront sells and rents: a Product with
// its size/color Variants, each carrying a sale price, an optional daily rent
// price and a stock snapshot.
//
// Stock on a Variant is read-only here. Reservations and restocks go through
// the stock ledger port so that concurrent checkouts never lose an update.
package catalog
