package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/client"
	"shipping/internal/core/domain/model/draft"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/ref"
	"shipping/internal/core/domain/model/transportation"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testToken = "test-token"

type stubClientRepository struct {
	actor *client.Client
}

func (r stubClientRepository) FindByToken(_ context.Context, token string) (*client.Client, error) {
	if token != testToken {
		return nil, nil
	}
	return r.actor, nil
}

type memoryDraftStore struct {
	drafts map[string]draft.Draft
	ids    map[string][]kernel.UUID
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{
		drafts: map[string]draft.Draft{},
		ids:    map[string][]kernel.UUID{},
	}
}

func (s *memoryDraftStore) Save(_ context.Context, key ports.DraftKey, d draft.Draft) error {
	s.drafts[key.String()] = d
	return nil
}

func (s *memoryDraftStore) Find(_ context.Context, key ports.DraftKey) (*draft.Draft, error) {
	d, ok := s.drafts[key.String()]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *memoryDraftStore) RegisterID(_ context.Context, key ports.DraftKey) error {
	for _, id := range s.ids[key.UserID.String()] {
		if id.IsEqual(key.DraftID) {
			return nil
		}
	}
	s.ids[key.UserID.String()] = append(s.ids[key.UserID.String()], key.DraftID)
	return nil
}

func (s *memoryDraftStore) IDs(_ context.Context, userID kernel.UUID) ([]kernel.UUID, error) {
	return s.ids[userID.String()], nil
}

type stubCityRepository struct {
	cities []ref.City
}

func (r stubCityRepository) GetAll(_ context.Context) ([]ref.City, error) {
	return r.cities, nil
}

func (r stubCityRepository) FindByName(_ context.Context, name string) (*ref.City, error) {
	for _, city := range r.cities {
		if strings.EqualFold(city.Name, name) {
			return &city, nil
		}
	}
	return nil, nil
}

func (r stubCityRepository) FindByID(_ context.Context, id int) (*ref.City, error) {
	for _, city := range r.cities {
		if city.ID == id {
			return &city, nil
		}
	}
	return nil, nil
}

type stubCountryRepository struct {
	countries []ref.Country
}

func (r stubCountryRepository) GetAll(_ context.Context) ([]ref.Country, error) {
	return r.countries, nil
}

func (r stubCountryRepository) FindByName(_ context.Context, name string) (*ref.Country, error) {
	for _, country := range r.countries {
		if strings.EqualFold(country.Name, name) || strings.EqualFold(country.ISO2, name) {
			return &country, nil
		}
	}
	return nil, nil
}

func (r stubCountryRepository) FindByID(_ context.Context, id int) (*ref.Country, error) {
	for _, country := range r.countries {
		if country.ID == id {
			return &country, nil
		}
	}
	return nil, nil
}

type stubCurrencyRepository struct {
	currencies []ref.Currency
}

func (r stubCurrencyRepository) GetAll(_ context.Context) ([]ref.Currency, error) {
	return r.currencies, nil
}

func (r stubCurrencyRepository) HasCurrency(code string) bool {
	for _, currency := range r.currencies {
		if currency.Code == strings.ToUpper(code) {
			return true
		}
	}
	return false
}

// memoryUnitOfWork backs the command handlers with map storage so the
// shipper endpoints can be exercised end to end. Begin, Commit and
// Rollback are no-ops since nothing is transactional here.
type memoryUnitOfWork struct {
	transportations map[string]*transportation.Transportation
	addresses       map[string]*address.Address
	cargos          map[string]*cargo.Cargo
}

func newMemoryUnitOfWork() *memoryUnitOfWork {
	return &memoryUnitOfWork{
		transportations: map[string]*transportation.Transportation{},
		addresses:       map[string]*address.Address{},
		cargos:          map[string]*cargo.Cargo{},
	}
}

func (u *memoryUnitOfWork) Begin(context.Context) error { return nil }

func (u *memoryUnitOfWork) Commit(context.Context) error { return nil }

func (u *memoryUnitOfWork) Rollback(context.Context) error { return nil }

func (u *memoryUnitOfWork) TransportationRepository() ports.TransportationRepository {
	return memoryTransportationRepository{uow: u}
}

func (u *memoryUnitOfWork) AddressRepository() ports.AddressRepository {
	return memoryAddressRepository{uow: u}
}

func (u *memoryUnitOfWork) CargoRepository() ports.CargoRepository {
	return memoryCargoRepository{uow: u}
}

type memoryTransportationRepository struct {
	uow *memoryUnitOfWork
}

func (r memoryTransportationRepository) Add(_ context.Context, aggregate *transportation.Transportation) error {
	r.uow.transportations[aggregate.ID().String()] = aggregate
	return nil
}

func (r memoryTransportationRepository) Update(_ context.Context, aggregate *transportation.Transportation) error {
	r.uow.transportations[aggregate.ID().String()] = aggregate
	return nil
}

func (r memoryTransportationRepository) Get(_ context.Context, id kernel.UUID) (*transportation.Transportation, error) {
	aggregate, ok := r.uow.transportations[id.String()]
	if !ok || aggregate.DeletedAt() != nil {
		return nil, errs.NewObjectNotFoundError("transportation_id", id)
	}
	return aggregate, nil
}

type memoryAddressRepository struct {
	uow *memoryUnitOfWork
}

func (r memoryAddressRepository) Add(_ context.Context, aggregate *address.Address) error {
	r.uow.addresses[aggregate.ID().String()] = aggregate
	return nil
}

func (r memoryAddressRepository) Update(_ context.Context, aggregate *address.Address) error {
	r.uow.addresses[aggregate.ID().String()] = aggregate
	return nil
}

func (r memoryAddressRepository) Get(_ context.Context, id kernel.UUID) (*address.Address, error) {
	aggregate, ok := r.uow.addresses[id.String()]
	if !ok || aggregate.DeletedAt() != nil {
		return nil, errs.NewObjectNotFoundError("address_id", id)
	}
	return aggregate, nil
}

func (r memoryAddressRepository) GetByTransportation(_ context.Context, transportationID kernel.UUID) ([]*address.Address, error) {
	var result []*address.Address
	for _, aggregate := range r.uow.addresses {
		if aggregate.TransportationID().IsEqual(transportationID) && aggregate.DeletedAt() == nil {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

type memoryCargoRepository struct {
	uow *memoryUnitOfWork
}

func (r memoryCargoRepository) Add(_ context.Context, aggregate *cargo.Cargo) error {
	r.uow.cargos[aggregate.ID().String()] = aggregate
	return nil
}

func (r memoryCargoRepository) Update(_ context.Context, aggregate *cargo.Cargo) error {
	r.uow.cargos[aggregate.ID().String()] = aggregate
	return nil
}

func (r memoryCargoRepository) Get(_ context.Context, id kernel.UUID) (*cargo.Cargo, error) {
	aggregate, ok := r.uow.cargos[id.String()]
	if !ok || aggregate.DeletedAt() != nil {
		return nil, errs.NewObjectNotFoundError("cargo_id", id)
	}
	return aggregate, nil
}

func (r memoryCargoRepository) GetByTransportation(_ context.Context, transportationID kernel.UUID) ([]*cargo.Cargo, error) {
	var result []*cargo.Cargo
	for _, aggregate := range r.uow.cargos {
		if aggregate.TransportationID().IsEqual(transportationID) && aggregate.DeletedAt() == nil {
			result = append(result, aggregate)
		}
	}
	return result, nil
}

type memoryTransportationUoWFactory struct {
	uow *memoryUnitOfWork
}

func (f memoryTransportationUoWFactory) Create() commands.TransportationUoW { return f.uow }

type memoryAddressUoWFactory struct {
	uow *memoryUnitOfWork
}

func (f memoryAddressUoWFactory) Create() commands.AddressUoW { return f.uow }

type memoryCargoUoWFactory struct {
	uow *memoryUnitOfWork
}

func (f memoryCargoUoWFactory) Create() commands.CargoUoW { return f.uow }

type stubGeocoder struct{}

func (stubGeocoder) Geocode(context.Context, string, string, string) (kernel.Coordinates, error) {
	return kernel.NewCoordinates(55.7558, 37.6173)
}

type testEnv struct {
	echo  *echo.Echo
	store *memoryDraftStore
	uow   *memoryUnitOfWork
	actor *client.Client
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	actor, err := client.NewClient(kernel.NewUUID(), "Test Shipper", "shipper@example.com")
	require.NoError(t, err)

	store := newMemoryDraftStore()

	countries := stubCountryRepository{countries: []ref.Country{
		{ID: 1, Name: "Russia", ISO2: "RU"},
		{ID: 2, Name: "Germany", ISO2: "DE"},
	}}
	cities := stubCityRepository{cities: []ref.City{
		{ID: 1, CountryID: 1, Name: "Moscow"},
		{ID: 2, CountryID: 2, Name: "Berlin"},
	}}
	currencies := stubCurrencyRepository{currencies: []ref.Currency{
		{ID: 1, Code: "RUB", Symbol: "₽"},
		{ID: 2, Code: "EUR", Symbol: "€"},
	}}

	uow := newMemoryUnitOfWork()
	transportationUoWs := memoryTransportationUoWFactory{uow: uow}
	addressUoWs := memoryAddressUoWFactory{uow: uow}
	cargoUoWs := memoryCargoUoWFactory{uow: uow}

	server := NewServer(
		zap.NewNop().Sugar(),
		commands.NewRegisterTransportationCommandHandler(transportationUoWs),
		commands.NewUpdateTransportationCommandHandler(transportationUoWs),
		commands.NewAddAddressCommandHandler(addressUoWs, cities, countries, stubGeocoder{}),
		commands.NewUpdateAddressCommandHandler(addressUoWs, cities, countries, stubGeocoder{}),
		commands.NewAddCargoCommandHandler(cargoUoWs, currencies),
		commands.NewUpdateCargoCommandHandler(cargoUoWs, currencies),
		commands.NewDeleteCargoCommandHandler(cargoUoWs),
		commands.NewSaveDraftCommandHandler(store),
		queries.GetShipperTransportationQueryHandler{},
		queries.GetShipperTransportationsQueryHandler{},
		queries.NewGetDraftQueryHandler(store),
		queries.NewListDraftsQueryHandler(store),
		queries.NewGetCountriesQueryHandler(countries),
		queries.NewGetCitiesQueryHandler(cities),
		queries.NewGetCurrenciesQueryHandler(currencies),
	)

	e := echo.New()
	server.RegisterRoutes(e, stubClientRepository{actor: actor})

	return &testEnv{echo: e, store: store, uow: uow, actor: actor}
}

func (env *testEnv) request(method, target string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestBearerAuth(t *testing.T) {
	env := newTestEnv(t)

	t.Run("should reject request without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transportation/create", nil)
		rec := httptest.NewRecorder()
		env.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/transportation/create", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer wrong-token")
		rec := httptest.NewRecorder()
		env.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should pass with valid token", func(t *testing.T) {
		rec := env.request(http.MethodGet, "/api/v1/transportation/create", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreateWizard(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/v1/transportation/create", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)

	draftID, ok := payload["draftId"].(string)
	require.True(t, ok)
	_, err := kernel.UUIDFromString(draftID)
	assert.NoError(t, err)

	drafts, ok := payload["drafts"].([]any)
	require.True(t, ok)
	assert.Empty(t, drafts)
}

func TestSaveDraft(t *testing.T) {
	draftID := kernel.NewUUID()
	target := "/api/v1/transportation/save-draft/" + draftID.String()

	t.Run("should save valid transportation step", func(t *testing.T) {
		env := newTestEnv(t)

		body := `{
			"step": "transportationStep",
			"data": {
				"name": "Office move",
				"pickupFrom": "2026-04-01 09:00:00",
				"pickupTo": "2026-04-01 18:00:00"
			}
		}`

		rec := env.request(http.MethodPut, target, body)

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decodeBody(t, rec)
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, draftID.String(), payload["draftId"])

		key := ports.DraftKey{UserID: env.actor.ID(), DraftID: draftID}
		saved, ok := env.store.drafts[key.String()]
		require.True(t, ok)
		assert.Equal(t, draft.TransportationStep, saved.Step)
		assert.Equal(t, "Office move", saved.Data["name"])
	})

	t.Run("should return field errors for incomplete step", func(t *testing.T) {
		env := newTestEnv(t)

		body := `{"step": "transportationStep", "data": {"pickupFrom": "2026-04-01 09:00:00"}}`

		rec := env.request(http.MethodPut, target, body)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		payload := decodeBody(t, rec)
		assert.Equal(t, false, payload["success"])

		fieldErrors, ok := payload["errors"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, fieldErrors, "name")
		assert.Contains(t, fieldErrors, "pickupTo")
	})

	t.Run("should reject unknown step", func(t *testing.T) {
		env := newTestEnv(t)

		body := `{"step": "paymentStep", "data": {}}`

		rec := env.request(http.MethodPut, target, body)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unknown transportation step")
	})

	t.Run("should reject confirmation step", func(t *testing.T) {
		env := newTestEnv(t)

		body := `{"step": "confirmationStep", "data": {}}`

		rec := env.request(http.MethodPut, target, body)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should inject transportation id into address step", func(t *testing.T) {
		env := newTestEnv(t)

		body := `{
			"step": "pickupAddressStep",
			"data": {
				"alias": "Warehouse",
				"type": "pickup",
				"contact": "Ivan Petrov",
				"city": "Moscow",
				"addressLine1": "Tverskaya 1",
				"phoneNumber": "+79161234567"
			}
		}`

		rec := env.request(http.MethodPut, target, body)

		require.Equal(t, http.StatusOK, rec.Code)

		key := ports.DraftKey{UserID: env.actor.ID(), DraftID: draftID}
		saved, ok := env.store.drafts[key.String()]
		require.True(t, ok)
		assert.Equal(t, draftID.String(), saved.Data["transportation_id"])
	})

	t.Run("should reject malformed draft id", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(http.MethodPut,
			"/api/v1/transportation/save-draft/not-a-uuid",
			`{"step": "transportationStep", "data": {}}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestGetDraft(t *testing.T) {
	t.Run("should return 204 when draft is absent", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.request(http.MethodGet,
			"/api/v1/transportation/draft/"+kernel.NewUUID().String(), "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("should return saved draft", func(t *testing.T) {
		env := newTestEnv(t)
		draftID := kernel.NewUUID()

		saved, err := draft.NewDraft(draft.TransportationStep,
			map[string]any{"name": "Berlin move"}, time.Now())
		require.NoError(t, err)

		key := ports.DraftKey{UserID: env.actor.ID(), DraftID: draftID}
		env.store.drafts[key.String()] = saved

		rec := env.request(http.MethodGet, "/api/v1/transportation/draft/"+draftID.String(), "")

		require.Equal(t, http.StatusOK, rec.Code)
		payload := decodeBody(t, rec)
		assert.Equal(t, true, payload["success"])

		data, ok := payload["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "transportationStep", data["step"])
	})
}

func TestListDraftsInWizard(t *testing.T) {
	env := newTestEnv(t)
	draftID := kernel.NewUUID()

	saved, err := draft.NewDraft(draft.TransportationStep,
		map[string]any{"name": "Berlin move"}, time.Now())
	require.NoError(t, err)

	key := ports.DraftKey{UserID: env.actor.ID(), DraftID: draftID}
	env.store.drafts[key.String()] = saved
	require.NoError(t, env.store.RegisterID(context.Background(), key))

	rec := env.request(http.MethodGet, "/api/v1/transportation/create", "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)

	drafts, ok := payload["drafts"].([]any)
	require.True(t, ok)
	require.Len(t, drafts, 1)

	item, ok := drafts[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, draftID.String(), item["draftId"])
	assert.Equal(t, "Berlin move", item["name"])
}

func TestGetTransportationSchema(t *testing.T) {
	env := newTestEnv(t)

	t.Run("should serve known step schema", func(t *testing.T) {
		rec := env.request(http.MethodGet,
			"/api/v1/transportation/create-transportation-schema/transportationStep", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "transportationStep")
		assert.Contains(t, rec.Body.String(), "pickupFrom")
	})

	t.Run("should return 404 for unknown step", func(t *testing.T) {
		rec := env.request(http.MethodGet,
			"/api/v1/transportation/create-transportation-schema/paymentStep", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		payload := decodeBody(t, rec)
		assert.Equal(t, "Step not found", payload["error"])
	})
}

func registerTestTransportation(t *testing.T, env *testEnv) string {
	t.Helper()

	body := `{
		"name": "Office move",
		"pickupFrom": "2026-04-01 09:00:00",
		"pickupTo": "2026-04-01 18:00:00"
	}`

	rec := env.request(http.MethodPost, "/public/api/v1/shipper/register-transportation", body)
	require.Equal(t, http.StatusOK, rec.Code)

	id, ok := decodeBody(t, rec)["id"].(string)
	require.True(t, ok)
	return id
}

func TestRegisterTransportation(t *testing.T) {
	env := newTestEnv(t)

	body := `{
		"name": "Office move",
		"pickupFrom": "2026-04-01 09:00:00",
		"pickupTo": "2026-04-01 18:00:00"
	}`

	rec := env.request(http.MethodPost, "/public/api/v1/shipper/register-transportation", body)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "transportation", payload["type"])

	id, ok := payload["id"].(string)
	require.True(t, ok)
	stored, ok := env.uow.transportations[id]
	require.True(t, ok)
	assert.Equal(t, "Office move", stored.Name())

	attributes, ok := payload["attributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Office move", attributes["name"])
}

func TestAddTransportationAddress(t *testing.T) {
	env := newTestEnv(t)
	transportationID := registerTestTransportation(t, env)

	body := `{
		"alias": "Warehouse",
		"type": "pickup",
		"contact": "Ivan Petrov",
		"city": "Moscow",
		"addressLine1": "Tverskaya 1",
		"phoneNumber": "+79161234567"
	}`

	rec := env.request(http.MethodPost,
		"/public/api/v1/shipper/"+transportationID+"/add-transportation-address", body)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "transportationAddress", payload["type"])

	attributes, ok := payload["attributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Warehouse", attributes["alias"])
	assert.Equal(t, "pickup", attributes["type"])

	parent := env.uow.transportations[transportationID]
	require.NotNil(t, parent.PickupAddressID())
	assert.Equal(t, payload["id"], parent.PickupAddressID().String())
}

func TestUpdateTransportationAddress(t *testing.T) {
	t.Run("should clear old slot when role changes", func(t *testing.T) {
		env := newTestEnv(t)
		transportationID := registerTestTransportation(t, env)

		created := env.request(http.MethodPost,
			"/public/api/v1/shipper/"+transportationID+"/add-transportation-address", `{
				"alias": "Warehouse",
				"type": "pickup",
				"contact": "Ivan Petrov",
				"city": "Moscow",
				"addressLine1": "Tverskaya 1",
				"phoneNumber": "+79161234567"
			}`)
		require.Equal(t, http.StatusOK, created.Code)
		addressID, ok := decodeBody(t, created)["id"].(string)
		require.True(t, ok)

		rec := env.request(http.MethodPatch,
			"/public/api/v1/shipper/"+transportationID+"/"+addressID+"/update-transportation-address", `{
				"alias": "Warehouse",
				"type": "delivery",
				"contact": "Ivan Petrov",
				"city": "Moscow",
				"addressLine1": "Tverskaya 1",
				"phoneNumber": "+79161234567"
			}`)

		require.Equal(t, http.StatusOK, rec.Code)

		parent := env.uow.transportations[transportationID]
		assert.Nil(t, parent.PickupAddressID())
		require.NotNil(t, parent.DeliveryAddressID())
		assert.Equal(t, addressID, parent.DeliveryAddressID().String())
	})
}

func TestAddCargo(t *testing.T) {
	env := newTestEnv(t)
	transportationID := registerTestTransportation(t, env)

	body := `{
		"name": "Box",
		"length": 10,
		"width": 10,
		"height": 10,
		"weight": 5,
		"price": 100,
		"currency": "RUB"
	}`

	rec := env.request(http.MethodPost,
		"/public/api/v1/shipper/"+transportationID+"/add-cargo", body)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "cargo", payload["type"])

	attributes, ok := payload["attributes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Box", attributes["name"])
	assert.Equal(t, "RUB", attributes["currency"])
	assert.Equal(t, transportationID, attributes["transportationId"])
}

func TestReferenceEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("should list countries", func(t *testing.T) {
		rec := env.request(http.MethodGet, "/api/countries", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "Russia", items[0]["name"])
		assert.Equal(t, "RU", items[0]["iso2"])
	})

	t.Run("should filter cities by country", func(t *testing.T) {
		rec := env.request(http.MethodGet, "/api/cities?country_id=2", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Berlin", items[0]["name"])
	})

	t.Run("should list all cities without filter", func(t *testing.T) {
		rec := env.request(http.MethodGet, "/api/cities", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		assert.Len(t, items, 2)
	})

	t.Run("should list currencies", func(t *testing.T) {
		rec := env.request(http.MethodGet, "/api/currencies", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var items []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.Equal(t, "RUB", items[0]["code"])
	})

	t.Run("should not require authentication", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
		rec := httptest.NewRecorder()
		env.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
