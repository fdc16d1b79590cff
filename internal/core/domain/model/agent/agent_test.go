package agent_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/agent"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var joinedAt = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewAgent(t *testing.T) {
	validID := kernel.NewUUID()
	userID := kernel.NewUUID()

	t.Run("should create active agent with valid parameters", func(t *testing.T) {
		a, err := agent.NewAgent(validID, userID, " ka-01-1234 ", agent.VehicleBike, joinedAt)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(validID))
		assert.True(t, a.UserID().IsEqual(userID))
		assert.Equal(t, "KA-01-1234", a.VehicleNumber())
		assert.Equal(t, agent.VehicleBike, a.VehicleType())
		assert.True(t, a.IsActive())
		assert.Equal(t, joinedAt, a.JoinedAt())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := agent.NewAgent(invalidID, userID, "KA-01", agent.VehicleCar, joinedAt)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), kernel.ErrUUIDIsNotConstructed.Error())
	})

	t.Run("should return joined errors for every invalid field", func(t *testing.T) {
		a, err := agent.NewAgent(validID, kernel.UUID{}, "  ", agent.VehicleUnknown, joinedAt)

		require.Error(t, err)
		assert.Nil(t, a)
		require.ErrorIs(t, err, agent.ErrVehicleNumberIsRequired)
		assert.Contains(t, err.Error(), "value is required: user")
		assert.Contains(t, err.Error(), "vehicle type")
	})
}

func TestAgent_Availability(t *testing.T) {
	a, err := agent.RestoreAgent(kernel.NewUUID(), kernel.NewUUID(), "KA-01", agent.VehicleVan, false, joinedAt)
	require.NoError(t, err)

	require.ErrorIs(t, a.EnsureActive(), agent.ErrAgentIsInactive)
	require.ErrorIs(t, a.EnsureActive(), errs.ErrValueIsInvalid)

	a.Activate()
	require.NoError(t, a.EnsureActive())

	a.SetActive(false)
	assert.False(t, a.IsActive())
}

func TestAgent_Validate(t *testing.T) {
	var a agent.Agent

	require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)

	var nilAgent *agent.Agent
	require.ErrorIs(t, nilAgent.EnsureActive(), agent.ErrAgentIsNotConstructed)
}

func TestParseVehicleType(t *testing.T) {
	v, err := agent.ParseVehicleType(" scooter ")
	require.NoError(t, err)
	assert.Equal(t, agent.VehicleScooter, v)
	assert.Equal(t, "Scooter", v.String())

	_, err = agent.ParseVehicleType("rocket")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
