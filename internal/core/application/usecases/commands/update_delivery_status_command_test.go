package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewUpdateDeliveryStatusCommand(t *testing.T) {
	t.Run("should create valid command without partner", func(t *testing.T) {
		deliveryID := kernel.NewUUID()

		cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, delivery.PickedUp, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.True(t, deliveryID.IsEqual(cmd.DeliveryID()))
		require.Equal(t, delivery.PickedUp, cmd.Status())
		require.Nil(t, cmd.PartnerID())
	})

	t.Run("should create valid command with partner", func(t *testing.T) {
		partnerID := kernel.NewUUID()

		cmd, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Assigned, &partnerID)

		require.NoError(t, err)
		require.NotNil(t, cmd.PartnerID())
		require.True(t, partnerID.IsEqual(*cmd.PartnerID()))
	})

	t.Run("should fail on invalid delivery id", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(kernel.UUID{}, delivery.PickedUp, nil)
		require.Error(t, err)
	})

	t.Run("should fail on unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Unknown, nil)
		require.Error(t, err)
	})

	t.Run("should fail on invalid partner id", func(t *testing.T) {
		_, err := commands.NewUpdateDeliveryStatusCommand(kernel.NewUUID(), delivery.Assigned, &kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.UpdateDeliveryStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateDeliveryStatusCommandIsNotConstructed)
	})
}
