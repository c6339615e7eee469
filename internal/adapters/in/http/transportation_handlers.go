package http

import (
	"net/http"
	"strconv"

	"shipping/internal/adapters/in/http/requests"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RegisterTransportation handles POST /public/api/v1/shipper/register-transportation.
func (s *Server) RegisterTransportation(c echo.Context) error {
	actor := currentClient(c)

	data, err := bindBody(c)
	if err != nil {
		return s.fail(c, "RegisterTransportation", err)
	}

	if validationErrors := requests.ValidateTransportationStep(data); !validationErrors.IsValid() {
		return respondValidationErrors(c, validationErrors)
	}

	pickup, err := kernel.ParseDateTimeInterval(
		stringField(data, "pickupFrom"),
		stringField(data, "pickupTo"),
	)
	if err != nil {
		return s.fail(c, "RegisterTransportation", err)
	}

	cmd, err := commands.NewRegisterTransportationCommand(
		kernel.NewUUID(),
		actor.ID(),
		stringField(data, "name"),
		pickup,
	)
	if err != nil {
		return s.fail(c, "RegisterTransportation", err)
	}

	created, err := s.registerTransportationHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "RegisterTransportation", err)
	}

	s.logger.Debugw("transportation registered",
		"transportationId", created.ID().String(), "clientId", actor.ID().String())

	return respond(c, http.StatusOK, transportationResource(created))
}

// UpdateTransportation handles PATCH /public/api/v1/shipper/:transportation_id/update-transportation.
func (s *Server) UpdateTransportation(c echo.Context) error {
	actor := currentClient(c)

	transportationID, err := parseUUIDParam(c, "transportation_id")
	if err != nil {
		return s.fail(c, "UpdateTransportation", err)
	}

	data, err := bindBody(c)
	if err != nil {
		return s.fail(c, "UpdateTransportation", err)
	}

	if validationErrors := requests.ValidateTransportationStep(data); !validationErrors.IsValid() {
		return respondValidationErrors(c, validationErrors)
	}

	pickup, err := kernel.ParseDateTimeInterval(
		stringField(data, "pickupFrom"),
		stringField(data, "pickupTo"),
	)
	if err != nil {
		return s.fail(c, "UpdateTransportation", err)
	}

	cmd, err := commands.NewUpdateTransportationCommand(
		transportationID,
		actor.ID(),
		stringField(data, "name"),
		pickup,
	)
	if err != nil {
		return s.fail(c, "UpdateTransportation", err)
	}

	updated, err := s.updateTransportationHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "UpdateTransportation", err)
	}

	return respond(c, http.StatusOK, transportationResource(updated))
}

// GetTransportation handles GET /public/api/v1/shipper/transportation/:transportation_id.
func (s *Server) GetTransportation(c echo.Context) error {
	actor := currentClient(c)

	transportationID, err := parseUUIDParam(c, "transportation_id")
	if err != nil {
		return s.fail(c, "GetTransportation", err)
	}

	query, err := queries.NewGetShipperTransportationQuery(transportationID, actor.ID())
	if err != nil {
		return s.fail(c, "GetTransportation", err)
	}

	found, err := s.getTransportationHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, "GetTransportation", err)
	}

	return respond(c, http.StatusOK, transportationReadResource(found))
}

// GetTransportationList handles GET /public/api/v1/shipper/transportation-list.
// Supports page, perPage, withTrashed, dateFrom and dateTo query parameters.
func (s *Server) GetTransportationList(c echo.Context) error {
	actor := currentClient(c)

	page, err := intQueryParam(c, "page")
	if err != nil {
		return s.fail(c, "GetTransportationList", err)
	}
	perPage, err := intQueryParam(c, "perPage")
	if err != nil {
		return s.fail(c, "GetTransportationList", err)
	}

	createdAt, err := kernel.ParseDateRange(c.QueryParam("dateFrom"), c.QueryParam("dateTo"))
	if err != nil {
		return s.fail(c, "GetTransportationList", err)
	}

	withTrashed := c.QueryParam("withTrashed") == "1" || c.QueryParam("withTrashed") == "true"

	query, err := queries.NewGetShipperTransportationsQuery(actor.ID(), page, perPage, withTrashed, createdAt)
	if err != nil {
		return s.fail(c, "GetTransportationList", err)
	}

	result, err := s.listTransportationsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, "GetTransportationList", err)
	}

	return respond(c, http.StatusOK, paginatedTransportations(result))
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}
