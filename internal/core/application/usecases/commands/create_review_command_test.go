package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateReviewCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	businessID := kernel.NewUUID()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	cmd, err := commands.NewCreateReviewCommand(id, actor, businessID, 4, "Solid work")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ReviewID())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, businessID, cmd.BusinessID())
	assert.Equal(t, 4, cmd.Rating())
	assert.Equal(t, "Solid work", cmd.Comment())
}

func TestNewCreateReviewCommand_RatingOutOfRange(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err = commands.NewCreateReviewCommand(kernel.NewUUID(), actor, kernel.NewUUID(), rating, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestNewCreateReviewCommand_EmptyCommentAllowed(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	cmd, err := commands.NewCreateReviewCommand(kernel.NewUUID(), actor, kernel.NewUUID(), 5, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Comment())
}

func TestNewCreateReviewCommand_InvalidBusinessID(t *testing.T) {
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
	require.NoError(t, err)

	_, err = commands.NewCreateReviewCommand(kernel.NewUUID(), actor, kernel.UUID{}, 3, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateReviewCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateReviewCommand
	err := cmd.Validate()
	require.ErrorIs(t, err, commands.ErrCreateReviewCommandIsNotConstructed)
}
