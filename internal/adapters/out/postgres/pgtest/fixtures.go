package pgtest

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/agentrepo"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/user"
)

// Password is the password of every seeded account.
const Password = "password123"

// SeedUser inserts an account with the given role.
func (d *Database) SeedUser(ctx context.Context, email string, role user.Role) (*user.User, error) {
	hash, err := user.NewPasswordHash(Password)
	if err != nil {
		return nil, err
	}
	u, err := user.NewUser(kernel.NewUUID(), "Test", "User", email, "+10000000000", role, hash,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	if err = userrepo.NewGormUserRepository(d.DB).Add(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SeedAgent inserts an agent user and its active agent profile.
func (d *Database) SeedAgent(ctx context.Context, email string) (*agent.Agent, error) {
	u, err := d.SeedUser(ctx, email, user.RoleAgent)
	if err != nil {
		return nil, err
	}
	a, err := agent.NewAgent(kernel.NewUUID(), u.ID(), "KA01AB1234", agent.VehicleBike,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	if err = agentrepo.NewGormAgentRepository(d.DB).Add(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// SeedProduct inserts a rentable product with one variant priced at
// salePrice (rent derives to a tenth of it) and the given stock.
func (d *Database) SeedProduct(
	ctx context.Context,
	name string,
	category catalog.Category,
	salePrice string,
	stock int,
) (*catalog.Product, error) {
	p, err := catalog.NewProduct(kernel.NewUUID(), name, name+" description", category, "Shirts", true,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		return nil, err
	}
	price := kernel.MustMoney(salePrice)
	if _, err = p.AddVariant(kernel.NewUUID(), "M", "Blue", stock, &price, nil); err != nil {
		return nil, err
	}
	if err = catalogrepo.NewGormProductRepository(d.DB).Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// SeedOrder inserts a placed order of customerID buying quantity units of
// variantID at unitPrice.
func (d *Database) SeedOrder(
	ctx context.Context,
	customerID, variantID kernel.UUID,
	quantity int,
	unitPrice string,
	placedAt time.Time,
) (*order.Order, error) {
	address, err := order.NewShippingAddress("+15550001", "1 Main St", "Springfield", "IL", "62701")
	if err != nil {
		return nil, err
	}
	o, err := order.NewOrder(kernel.NewUUID(), customerID, address, placedAt)
	if err != nil {
		return nil, err
	}
	if _, err = o.AddSaleItem(kernel.NewUUID(), variantID, quantity, kernel.MustMoney(unitPrice)); err != nil {
		return nil, err
	}
	if _, err = o.Place(placedAt); err != nil {
		return nil, err
	}
	if err = orderrepo.NewGormOrderRepository(d.DB, nopTracker{}).Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
