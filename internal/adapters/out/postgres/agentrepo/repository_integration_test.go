package agentrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/agentrepo"
	"storefront/internal/adapters/out/postgres/pgtest"
	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type AgentRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *agentrepo.GormAgentRepository
}

func (suite *AgentRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *AgentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Reset())
	suite.repository = agentrepo.NewGormAgentRepository(suite.pg.DB)
}

func (suite *AgentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *AgentRepositoryIntegrationTestSuite) addAgent(email string, joinedAt time.Time) *agent.Agent {
	ctx := context.Background()
	u, err := suite.pg.SeedUser(ctx, email, user.RoleAgent)
	suite.Require().NoError(err)

	a, err := agent.NewAgent(kernel.NewUUID(), u.ID(), "ka01ab1234", agent.VehicleScooter, joinedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, a))
	return a
}

func (suite *AgentRepositoryIntegrationTestSuite) TestAdd_ThenGet() {
	ctx := context.Background()
	a := suite.addAgent("rider@example.com", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	got, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(a.UserID(), got.UserID())
	suite.Equal(a.VehicleNumber(), got.VehicleNumber())
	suite.Equal(agent.VehicleScooter, got.VehicleType())
	suite.True(got.IsActive())

	byUser, err := suite.repository.GetByUser(ctx, a.UserID())
	suite.Require().NoError(err)
	suite.Equal(a.ID(), byUser.ID())
}

func (suite *AgentRepositoryIntegrationTestSuite) TestGetByUser_NotAnAgent_ReturnsNotFound() {
	_, err := suite.repository.GetByUser(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AgentRepositoryIntegrationTestSuite) TestUpdate_And_GetAllActive() {
	ctx := context.Background()
	early := suite.addAgent("early@example.com", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	late := suite.addAgent("late@example.com", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	off := suite.addAgent("off@example.com", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))

	off.SetActive(false)
	suite.Require().NoError(suite.repository.Update(ctx, off))

	active, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.Equal(early.ID(), active[0].ID())
	suite.Equal(late.ID(), active[1].ID())
}

func (suite *AgentRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	a, err := agent.NewAgent(kernel.NewUUID(), kernel.NewUUID(), "X1", agent.VehicleCar, time.Now())
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repository.Update(context.Background(), a), errs.ErrObjectNotFound)
}

func TestAgentRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AgentRepositoryIntegrationTestSuite))
}
