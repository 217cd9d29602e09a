package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func validCoordinates(t *testing.T) (kernel.Coordinate, kernel.Coordinate) {
	t.Helper()
	pickup, err := kernel.NewCoordinate(26.6602, 86.2070)
	require.NoError(t, err)
	dropoff, err := kernel.NewCoordinate(26.7191, 86.0951)
	require.NoError(t, err)
	return pickup, dropoff
}

func TestNewCreateDeliveryCommand(t *testing.T) {
	pickup, dropoff := validCoordinates(t)

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Siraha Bazaar", "Lahan Main Road", pickup, dropoff)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, "Siraha Bazaar", cmd.PickupAddress())
		require.Equal(t, "Lahan Main Road", cmd.DeliveryAddress())
	})

	t.Run("should fail on invalid ids", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", pickup, dropoff)
		require.Error(t, err)
	})

	t.Run("should fail on empty addresses", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "b", pickup, dropoff)
		require.ErrorIs(t, err, commands.ErrPickupAddressIsRequired)

		_, err = commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"a", "", pickup, dropoff)
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)
	})

	t.Run("should fail on unconstructed coordinates", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"a", "b", kernel.Coordinate{}, dropoff)
		require.ErrorIs(t, err, kernel.ErrCoordinateIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateDeliveryCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
	})
}
