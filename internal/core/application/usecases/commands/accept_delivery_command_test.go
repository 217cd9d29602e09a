package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewAcceptDeliveryCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		deliveryID := kernel.NewUUID()
		partnerID := kernel.NewUUID()

		cmd, err := commands.NewAcceptDeliveryCommand(deliveryID, partnerID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.True(t, deliveryID.IsEqual(cmd.DeliveryID()))
		require.True(t, partnerID.IsEqual(cmd.PartnerID()))
	})

	t.Run("should fail on invalid delivery id", func(t *testing.T) {
		_, err := commands.NewAcceptDeliveryCommand(kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("should fail on invalid partner id", func(t *testing.T) {
		_, err := commands.NewAcceptDeliveryCommand(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.AcceptDeliveryCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAcceptDeliveryCommandIsNotConstructed)
	})
}
