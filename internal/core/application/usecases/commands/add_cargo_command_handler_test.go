package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/transportation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCharacteristics(t *testing.T) cargo.Characteristics {
	t.Helper()
	characteristics, err := cargo.NewCharacteristics("Box", 10, 10, 10, 5)
	require.NoError(t, err)
	return characteristics
}

func TestAddCargoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cargoID := kernel.NewUUID()
	transportationID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	cmd, err := commands.NewAddCargoCommand(
		cargoID, transportationID, clientID, testCharacteristics(t), 100, "RUB",
	)
	require.NoError(t, err)

	currencies := newStubCurrencies("RUB", "EUR", "USD")
	currency, err := kernel.NewCurrency("RUB", currencies)
	require.NoError(t, err)
	price, err := kernel.NewMoney(100, &currency, currencies)
	require.NoError(t, err)
	stored, err := cargo.NewCargo(cargoID, transportationID, clientID, testCharacteristics(t), price)
	require.NoError(t, err)

	parent := testTransportation(t, transportationID, clientID)

	transportationRepo := new(MockTransportationRepository)
	cargoRepo := new(MockCargoRepository)
	uow := new(MockCargoUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportationRepository").Return(transportationRepo).Once(),
		transportationRepo.On("Get", mock.Anything, transportationID).Return(parent, nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Add", mock.Anything, mock.AnythingOfType("*cargo.Cargo")).Return(nil).Once(),
		cargoRepo.On("Get", mock.Anything, cargoID).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCargoCommandHandler(factory, currencies)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "RUB", created.Price().Currency().Code())
	cargoRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCargoCommandHandler_Handle_DefaultCurrency(t *testing.T) {
	ctx := t.Context()
	cargoID := kernel.NewUUID()
	transportationID := kernel.NewUUID()
	clientID := kernel.NewUUID()

	cmd, err := commands.NewAddCargoCommand(
		cargoID, transportationID, clientID, testCharacteristics(t), 100, "",
	)
	require.NoError(t, err)

	currencies := newStubCurrencies("RUB", "EUR", "USD")
	defaultPrice, err := kernel.NewMoney(100, nil, currencies)
	require.NoError(t, err)
	stored, err := cargo.NewCargo(cargoID, transportationID, clientID, testCharacteristics(t), defaultPrice)
	require.NoError(t, err)

	parent := testTransportation(t, transportationID, clientID)

	transportationRepo := new(MockTransportationRepository)
	cargoRepo := new(MockCargoRepository)
	uow := new(MockCargoUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportationRepository").Return(transportationRepo).Once(),
		transportationRepo.On("Get", mock.Anything, transportationID).Return(parent, nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Add", mock.Anything, mock.AnythingOfType("*cargo.Cargo")).Return(nil).Once(),
		cargoRepo.On("Get", mock.Anything, cargoID).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCargoCommandHandler(factory, currencies)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, kernel.DefaultCurrencyCode, created.Price().Currency().Code())
}

func TestAddCargoCommandHandler_Handle_InvalidCurrency(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCargoCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testCharacteristics(t), 100, "XXX",
	)
	require.NoError(t, err)

	factory := new(MockCargoUoWFactory)

	h := commands.NewAddCargoCommandHandler(factory, newStubCurrencies("RUB", "EUR", "USD"))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid currency XXX")
	factory.AssertNotCalled(t, "Create")
}

func TestAddCargoCommandHandler_Handle_NegativePrice(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCargoCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), testCharacteristics(t), -1, "RUB",
	)
	require.NoError(t, err)

	factory := new(MockCargoUoWFactory)

	h := commands.NewAddCargoCommandHandler(factory, newStubCurrencies("RUB"))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorContains(t, err, "Amount cannot be negative")
	factory.AssertNotCalled(t, "Create")
}

func TestAddCargoCommandHandler_Handle_ForeignTransportation(t *testing.T) {
	ctx := t.Context()
	transportationID := kernel.NewUUID()
	cmd, err := commands.NewAddCargoCommand(
		kernel.NewUUID(), transportationID, kernel.NewUUID(), testCharacteristics(t), 100, "RUB",
	)
	require.NoError(t, err)

	otherOwner := testTransportation(t, transportationID, kernel.NewUUID())

	transportationRepo := new(MockTransportationRepository)
	uow := new(MockCargoUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TransportationRepository").Return(transportationRepo).Once(),
		transportationRepo.On("Get", mock.Anything, transportationID).Return(otherOwner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCargoCommandHandler(factory, newStubCurrencies("RUB"))
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, transportation.ErrAccessForbidden)
	uow.AssertExpectations(t)
}
