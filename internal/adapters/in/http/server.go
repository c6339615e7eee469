package http

import (
	"strconv"
	"strings"

	"shipping/internal/adapters/in/http/requests"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server coordinates between HTTP handlers and application use cases. All
// booking routes require a bearer token; the reference routes are public.
type Server struct {
	logger *zap.SugaredLogger

	// Command handlers
	registerTransportationHandler commands.RegisterTransportationCommandHandler
	updateTransportationHandler   commands.UpdateTransportationCommandHandler
	addAddressHandler             commands.AddAddressCommandHandler
	updateAddressHandler          commands.UpdateAddressCommandHandler
	addCargoHandler               commands.AddCargoCommandHandler
	updateCargoHandler            commands.UpdateCargoCommandHandler
	deleteCargoHandler            commands.DeleteCargoCommandHandler
	saveDraftHandler              commands.SaveDraftCommandHandler

	// Query handlers
	getTransportationHandler   queries.GetShipperTransportationQueryHandler
	listTransportationsHandler queries.GetShipperTransportationsQueryHandler
	getDraftHandler            queries.GetDraftQueryHandler
	listDraftsHandler          queries.ListDraftsQueryHandler
	getCountriesHandler        queries.GetCountriesQueryHandler
	getCitiesHandler           queries.GetCitiesQueryHandler
	getCurrenciesHandler       queries.GetCurrenciesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	logger *zap.SugaredLogger,
	registerTransportationHandler commands.RegisterTransportationCommandHandler,
	updateTransportationHandler commands.UpdateTransportationCommandHandler,
	addAddressHandler commands.AddAddressCommandHandler,
	updateAddressHandler commands.UpdateAddressCommandHandler,
	addCargoHandler commands.AddCargoCommandHandler,
	updateCargoHandler commands.UpdateCargoCommandHandler,
	deleteCargoHandler commands.DeleteCargoCommandHandler,
	saveDraftHandler commands.SaveDraftCommandHandler,
	getTransportationHandler queries.GetShipperTransportationQueryHandler,
	listTransportationsHandler queries.GetShipperTransportationsQueryHandler,
	getDraftHandler queries.GetDraftQueryHandler,
	listDraftsHandler queries.ListDraftsQueryHandler,
	getCountriesHandler queries.GetCountriesQueryHandler,
	getCitiesHandler queries.GetCitiesQueryHandler,
	getCurrenciesHandler queries.GetCurrenciesQueryHandler,
) *Server {
	return &Server{
		logger:                        logger,
		registerTransportationHandler: registerTransportationHandler,
		updateTransportationHandler:   updateTransportationHandler,
		addAddressHandler:             addAddressHandler,
		updateAddressHandler:          updateAddressHandler,
		addCargoHandler:               addCargoHandler,
		updateCargoHandler:            updateCargoHandler,
		deleteCargoHandler:            deleteCargoHandler,
		saveDraftHandler:              saveDraftHandler,
		getTransportationHandler:      getTransportationHandler,
		listTransportationsHandler:    listTransportationsHandler,
		getDraftHandler:               getDraftHandler,
		listDraftsHandler:             listDraftsHandler,
		getCountriesHandler:           getCountriesHandler,
		getCitiesHandler:              getCitiesHandler,
		getCurrenciesHandler:          getCurrenciesHandler,
	}
}

// RegisterRoutes mounts all routes on the echo instance. The clients
// repository backs the bearer-token middleware on authenticated groups.
func (s *Server) RegisterRoutes(e *echo.Echo, clients ports.ClientRepository) {
	auth := BearerAuth(clients)

	wizard := e.Group("/api/v1/transportation", auth)
	wizard.GET("/create", s.CreateWizard)
	wizard.GET("/create-transportation-schema/:stepId", s.GetTransportationSchema)
	wizard.PUT("/save-draft/:draftId", s.SaveDraft)
	wizard.GET("/draft/:draftId", s.GetDraft)

	shipper := e.Group("/public/api/v1/shipper", auth)
	shipper.POST("/register-transportation", s.RegisterTransportation)
	shipper.GET("/transportation-list", s.GetTransportationList)
	shipper.GET("/transportation/:transportation_id", s.GetTransportation)
	shipper.PATCH("/:transportation_id/update-transportation", s.UpdateTransportation)
	shipper.POST("/:transportation_id/add-transportation-address", s.AddTransportationAddress)
	shipper.PATCH("/:transportation_id/:address_id/update-transportation-address", s.UpdateTransportationAddress)
	shipper.POST("/:transportation_id/add-cargo", s.AddCargo)
	shipper.PATCH("/:transportation_id/:cargo_id/update-cargo", s.UpdateCargo)
	shipper.DELETE("/:transportation_id/:cargo_id/delete-cargo", s.DeleteCargo)

	reference := e.Group("/api")
	reference.GET("/countries", s.GetCountries)
	reference.GET("/cities", s.GetCities)
	reference.GET("/currencies", s.GetCurrencies)
}

// fail logs the error and renders it with the shared error mapping. Expected
// domain outcomes are logged at debug level, everything else as an error.
func (s *Server) fail(c echo.Context, operation string, err error) error {
	if isExpectedError(err) {
		s.logger.Debugw(operation+" rejected", "error", err)
	} else {
		s.logger.Errorw(operation+" failed", "error", err)
	}
	return respondError(c, err)
}

func bindBody(c echo.Context) (map[string]any, error) {
	data := map[string]any{}
	if err := c.Bind(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func parseUUIDParam(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func stringField(data map[string]any, field string) string {
	value, ok := data[field].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(requests.StripHTML(value))
}

// intField reads a numeric field that may arrive as a JSON number or a
// numeric string. Validation has already ensured it parses.
func intField(data map[string]any, field string) int {
	switch value := data[field].(type) {
	case float64:
		return int(value)
	case int:
		return value
	case int64:
		return int(value)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func int64Field(data map[string]any, field string) int64 {
	return int64(intField(data, field))
}
