package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories and the stock ledger obtained after Begin share its
// transaction. Domain events recorded by aggregates written through it are
// published once Commit succeeds and dropped on Rollback.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	ProductRepository() ProductRepository
	StockLedger() StockLedger
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	AgentRepository() AgentRepository
	UserRepository() UserRepository
	RegistrationSessionRepository() RegistrationSessionRepository
}
