package commands_test

import (
	"testing"
	"time"

	"osonish/internal/core/application/usecases/commands"
	"osonish/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustServiceDate(t *testing.T) kernel.ServiceDate {
	t.Helper()
	day, err := kernel.NewServiceDate(2025, time.September, 30)
	require.NoError(t, err)
	return day
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	day := mustServiceDate(t)

	cmd, err := commands.NewCreateOrderCommand(id, customerID, "Apartment renovation", day, 500000, 2)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, "Apartment renovation", cmd.Title())
	assert.True(t, cmd.ServiceDate().IsEqual(day))
	assert.Equal(t, 500000, cmd.Budget())
	assert.Equal(t, 2, cmd.WorkersNeeded())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), "Apartment renovation", mustServiceDate(t), 500000, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), invalidID, "Apartment renovation", mustServiceDate(t), 500000, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyTitle(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", mustServiceDate(t), 500000, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTitleIsRequired)
}

func TestNewCreateOrderCommand_InvalidServiceDate(t *testing.T) {
	var day kernel.ServiceDate
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Apartment renovation", day, 500000, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrServiceDateIsNotConstructed)
}

func TestNewCreateOrderCommand_NegativeBudget(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Apartment renovation", mustServiceDate(t), -1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrBudgetIsInvalid)
}

func TestNewCreateOrderCommand_InvalidWorkersCount(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "Apartment renovation", mustServiceDate(t), 500000, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWorkersCountIsInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
