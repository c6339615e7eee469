package http

import (
	"net/http"

	"shipping/internal/adapters/in/http/requests"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// AddCargo handles POST /public/api/v1/shipper/:transportation_id/add-cargo.
func (s *Server) AddCargo(c echo.Context) error {
	actor := currentClient(c)

	transportationID, err := parseUUIDParam(c, "transportation_id")
	if err != nil {
		return s.fail(c, "AddCargo", err)
	}

	data, err := bindBody(c)
	if err != nil {
		return s.fail(c, "AddCargo", err)
	}
	data["transportation_id"] = transportationID.String()

	if validationErrors := requests.ValidateCargoStep(data); !validationErrors.IsValid() {
		return respondValidationErrors(c, validationErrors)
	}

	characteristics, err := cargoCharacteristics(data)
	if err != nil {
		return s.fail(c, "AddCargo", err)
	}

	cmd, err := commands.NewAddCargoCommand(
		kernel.NewUUID(),
		transportationID,
		actor.ID(),
		characteristics,
		int64Field(data, "price"),
		stringField(data, "currency"),
	)
	if err != nil {
		return s.fail(c, "AddCargo", err)
	}

	created, err := s.addCargoHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "AddCargo", err)
	}

	return respond(c, http.StatusOK, cargoResource(created))
}

// UpdateCargo handles PATCH /public/api/v1/shipper/:transportation_id/:cargo_id/update-cargo.
func (s *Server) UpdateCargo(c echo.Context) error {
	actor := currentClient(c)

	transportationID, err := parseUUIDParam(c, "transportation_id")
	if err != nil {
		return s.fail(c, "UpdateCargo", err)
	}
	cargoID, err := parseUUIDParam(c, "cargo_id")
	if err != nil {
		return s.fail(c, "UpdateCargo", err)
	}

	data, err := bindBody(c)
	if err != nil {
		return s.fail(c, "UpdateCargo", err)
	}
	data["transportation_id"] = transportationID.String()

	if validationErrors := requests.ValidateCargoStep(data); !validationErrors.IsValid() {
		return respondValidationErrors(c, validationErrors)
	}

	characteristics, err := cargoCharacteristics(data)
	if err != nil {
		return s.fail(c, "UpdateCargo", err)
	}

	cmd, err := commands.NewUpdateCargoCommand(
		cargoID,
		transportationID,
		actor.ID(),
		characteristics,
		int64Field(data, "price"),
		stringField(data, "currency"),
	)
	if err != nil {
		return s.fail(c, "UpdateCargo", err)
	}

	updated, err := s.updateCargoHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "UpdateCargo", err)
	}

	return respond(c, http.StatusOK, cargoResource(updated))
}

// DeleteCargo handles DELETE /public/api/v1/shipper/:transportation_id/:cargo_id/delete-cargo.
func (s *Server) DeleteCargo(c echo.Context) error {
	actor := currentClient(c)

	transportationID, err := parseUUIDParam(c, "transportation_id")
	if err != nil {
		return s.fail(c, "DeleteCargo", err)
	}
	cargoID, err := parseUUIDParam(c, "cargo_id")
	if err != nil {
		return s.fail(c, "DeleteCargo", err)
	}

	cmd, err := commands.NewDeleteCargoCommand(cargoID, transportationID, actor.ID())
	if err != nil {
		return s.fail(c, "DeleteCargo", err)
	}

	deleted, err := s.deleteCargoHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "DeleteCargo", err)
	}

	return respond(c, http.StatusOK, cargoResource(deleted))
}

func cargoCharacteristics(data map[string]any) (cargo.Characteristics, error) {
	return cargo.NewCharacteristics(
		stringField(data, "name"),
		intField(data, "length"),
		intField(data, "width"),
		intField(data, "height"),
		intField(data, "weight"),
	)
}
