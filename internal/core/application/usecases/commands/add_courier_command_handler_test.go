package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/domain/model/courier"
)

func TestAddCourierCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAddCourierCommand("Vondelpark Courier", 4.8686, 52.3579, courier.Delivering)
	require.NoError(t, err)

	var added courier.Courier
	mockRepo := new(MockFleetRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("FleetRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(c courier.Courier) bool {
			added = c
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddCourierCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, cmd.CourierID(), added.ID)
	assert.Equal(t, "Vondelpark Courier", added.Name)
	assert.Equal(t, courier.Delivering, added.Status)
	assert.Zero(t, added.SpeedKmh, "new couriers start stationary until the next tick")
	require.NoError(t, added.Validate())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestAddCourierCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.AddCourierCommand

	mockFactory := new(MockUoWFactory)
	handler := commands.NewAddCourierCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAddCourierCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestAddCourierCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewAddCourierCommand("Courier", 4.89, 52.37, courier.Idle)
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockFleetRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("FleetRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("courier.Courier")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewAddCourierCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
