// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	StockLedgerFactory interface {
		StockLedger() ports.StockLedger
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	RegistrationSessionRepoFactory interface {
		RegistrationSessionRepository() ports.RegistrationSessionRepository
	}

	// CatalogUoW covers product administration and absolute stock changes.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		StockLedgerFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CartUoW reads the catalog and writes the customer's cart.
	CartUoW interface {
		TxManager
		ProductRepoFactory
		CartRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW turns a cart into an order, its delivery and its reservations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CartRepository().Get(ctx, customerID)
	//   // ... place the order, reserve stock
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
		DeliveryRepoFactory
		StockLedgerFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW moves line items through their state machines and restocks.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StockLedgerFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeliveryUoW manages deliveries, the agents doing them and the rentals
	// activated on hand-over.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		AgentRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// AgentUoW manages agents and the role of their user accounts.
	AgentUoW interface {
		TxManager
		AgentRepoFactory
		UserRepoFactory
	}

	AgentUoWFactory interface {
		Create() AgentUoW
	}

	// UserUoW covers registration and sign-in.
	UserUoW interface {
		TxManager
		UserRepoFactory
		RegistrationSessionRepoFactory
		AgentRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
