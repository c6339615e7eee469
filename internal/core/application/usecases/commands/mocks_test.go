package commands_test

import (
	"context"
	"errors"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/ref"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTransportationRepository struct{ mock.Mock }

func (m *MockTransportationRepository) Add(ctx context.Context, t *transportation.Transportation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTransportationRepository) Update(ctx context.Context, t *transportation.Transportation) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockTransportationRepository) Get(
	ctx context.Context,
	id kernel.UUID,
) (*transportation.Transportation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transportation.Transportation), args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Add(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAddressRepository) Update(ctx context.Context, a *address.Address) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAddressRepository) Get(ctx context.Context, id kernel.UUID) (*address.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*address.Address), args.Error(1)
}
func (m *MockAddressRepository) GetByTransportation(
	_ context.Context,
	_ kernel.UUID,
) ([]*address.Address, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCargoRepository) Update(ctx context.Context, c *cargo.Cargo) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCargoRepository) Get(ctx context.Context, id kernel.UUID) (*cargo.Cargo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}
func (m *MockCargoRepository) GetByTransportation(_ context.Context, _ kernel.UUID) ([]*cargo.Cargo, error) {
	return nil, errors.New("not implemented in mock")
}

type MockTransportationUoW struct{ mock.Mock }

func (m *MockTransportationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransportationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransportationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTransportationUoW) TransportationRepository() ports.TransportationRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportationRepository)
}

type MockTransportationUoWFactory struct{ mock.Mock }

func (m *MockTransportationUoWFactory) Create() commands.TransportationUoW {
	args := m.Called()
	return args.Get(0).(commands.TransportationUoW)
}

type MockAddressUoW struct{ mock.Mock }

func (m *MockAddressUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAddressUoW) TransportationRepository() ports.TransportationRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportationRepository)
}
func (m *MockAddressUoW) AddressRepository() ports.AddressRepository {
	args := m.Called()
	return args.Get(0).(ports.AddressRepository)
}

type MockAddressUoWFactory struct{ mock.Mock }

func (m *MockAddressUoWFactory) Create() commands.AddressUoW {
	args := m.Called()
	return args.Get(0).(commands.AddressUoW)
}

type MockCargoUoW struct{ mock.Mock }

func (m *MockCargoUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCargoUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCargoUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCargoUoW) TransportationRepository() ports.TransportationRepository {
	args := m.Called()
	return args.Get(0).(ports.TransportationRepository)
}
func (m *MockCargoUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

type MockCargoUoWFactory struct{ mock.Mock }

func (m *MockCargoUoWFactory) Create() commands.CargoUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoUoW)
}

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) GetAll(_ context.Context) ([]ref.City, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCityRepository) FindByName(ctx context.Context, name string) (*ref.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ref.City), args.Error(1)
}
func (m *MockCityRepository) FindByID(_ context.Context, _ int) (*ref.City, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCountryRepository struct{ mock.Mock }

func (m *MockCountryRepository) GetAll(_ context.Context) ([]ref.Country, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCountryRepository) FindByName(ctx context.Context, name string) (*ref.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ref.Country), args.Error(1)
}
func (m *MockCountryRepository) FindByID(_ context.Context, _ int) (*ref.Country, error) {
	return nil, errors.New("not implemented in mock")
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(
	ctx context.Context,
	country, city, addressLine string,
) (kernel.Coordinates, error) {
	args := m.Called(ctx, country, city, addressLine)
	return args.Get(0).(kernel.Coordinates), args.Error(1)
}

// stubCurrencies is a fixed reference currency set.
type stubCurrencies struct {
	codes map[string]bool
}

func newStubCurrencies(codes ...string) *stubCurrencies {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return &stubCurrencies{codes: m}
}

func (s *stubCurrencies) GetAll(_ context.Context) ([]ref.Currency, error) {
	return nil, errors.New("not implemented in stub")
}
func (s *stubCurrencies) HasCurrency(code string) bool {
	return s.codes[code]
}
