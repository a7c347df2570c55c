package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	packageID := kernel.NewUUID()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(id, actor, packageID)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, packageID, cmd.PackageID())
}

func TestNewPlaceOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	_, err = commands.NewPlaceOrderCommand(invalidID, actor, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewPlaceOrderCommand_ZeroValueActor(t *testing.T) {
	var actor kernel.Actor
	_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, kernel.NewUUID())
	require.Error(t, err)
}

func TestNewPlaceOrderCommand_InvalidPackageID(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	_, err = commands.NewPlaceOrderCommand(kernel.NewUUID(), actor, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
