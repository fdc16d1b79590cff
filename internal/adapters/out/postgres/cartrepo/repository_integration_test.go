package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *cartrepo.GormCartRepository
	product    *catalog.Product
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
	p, err := suite.pg.SeedProduct(context.Background(), "Party Dress", catalog.Women, "300.00", 4)
	suite.Require().NoError(err)
	suite.product = p
	suite.repository = cartrepo.NewGormCartRepository(suite.pg.DB)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *CartRepositoryIntegrationTestSuite) TestGet_NoItems_ReturnsEmptyCart() {
	c, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.True(c.IsEmpty())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ThenGet_RoundTripsItems() {
	ctx := context.Background()
	now := time.Now().UTC()
	customerID := kernel.NewUUID()
	variantID := suite.product.Variants()[0].ID()

	c, err := suite.repository.Get(ctx, customerID)
	suite.Require().NoError(err)

	_, err = c.Add(kernel.NewUUID(), suite.product, variantID, 2, nil, now)
	suite.Require().NoError(err)
	start := kernel.Date(now).AddDate(0, 0, cart.RentalNoticeDays+1)
	period, err := kernel.NewDateRange(start, start.AddDate(0, 0, 2))
	suite.Require().NoError(err)
	_, err = c.Add(kernel.NewUUID(), suite.product, variantID, 1, &period, now.Add(time.Second))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, c))

	got, err := suite.repository.Get(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(got.Items(), 2)
	suite.Equal(cart.Sale, got.Items()[0].Kind())
	suite.Equal(2, got.Items()[0].Quantity())
	suite.Equal("300.00", got.Items()[0].PriceAtAdd().String())
	suite.Equal(cart.Rental, got.Items()[1].Kind())
	suite.True(got.Items()[1].Period().IsEqual(period))
	suite.Equal(c.Total().String(), got.Total().String())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ReplacesItems() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	variantID := suite.product.Variants()[0].ID()

	c, err := suite.repository.Get(ctx, customerID)
	suite.Require().NoError(err)
	item, err := c.Add(kernel.NewUUID(), suite.product, variantID, 1, nil, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	suite.Require().NoError(c.Remove(item.ID()))
	suite.Require().NoError(suite.repository.Save(ctx, c))

	got, err := suite.repository.Get(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(got.IsEmpty())
}

func TestCartRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
