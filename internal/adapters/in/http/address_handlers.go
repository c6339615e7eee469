package http

import (
	"net/http"

	"shipping/internal/adapters/in/http/requests"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// defaultCountry backs address forms that omit the country field. The
// country resolver accepts ISO2 codes as well as native names.
const defaultCountry = "RU"

// AddTransportationAddress handles POST /public/api/v1/shipper/:transportation_id/add-transportation-address.
func (s *Server) AddTransportationAddress(c echo.Context) error {
	return s.handleAddressWrite(c, "AddTransportationAddress", kernel.UUID{})
}

// UpdateTransportationAddress handles PATCH /public/api/v1/shipper/:transportation_id/:address_id/update-transportation-address.
func (s *Server) UpdateTransportationAddress(c echo.Context) error {
	addressID, err := parseUUIDParam(c, "address_id")
	if err != nil {
		return s.fail(c, "UpdateTransportationAddress", err)
	}
	return s.handleAddressWrite(c, "UpdateTransportationAddress", addressID)
}

// handleAddressWrite runs the shared add/update flow. A zero addressID means
// a new address is being created.
func (s *Server) handleAddressWrite(c echo.Context, operation string, addressID kernel.UUID) error {
	actor := currentClient(c)

	transportationID, err := parseUUIDParam(c, "transportation_id")
	if err != nil {
		return s.fail(c, operation, err)
	}

	data, err := bindBody(c)
	if err != nil {
		return s.fail(c, operation, err)
	}
	data["transportation_id"] = transportationID.String()

	if validationErrors := requests.ValidateAddressStep(data); !validationErrors.IsValid() {
		return respondValidationErrors(c, validationErrors)
	}

	addressType, err := address.TypeFromString(stringField(data, "type"))
	if err != nil {
		return s.fail(c, operation, err)
	}

	phone, err := kernel.NewPhoneNumber(stringField(data, "phoneNumber"))
	if err != nil {
		return s.fail(c, operation, err)
	}

	countryName := stringField(data, "country")
	if countryName == "" {
		countryName = defaultCountry
	}

	if addressID.Validate() != nil {
		cmd, cmdErr := commands.NewAddAddressCommand(
			kernel.NewUUID(),
			transportationID,
			actor.ID(),
			addressType,
			stringField(data, "alias"),
			stringField(data, "contact"),
			phone,
			stringField(data, "city"),
			countryName,
			stringField(data, "addressLine1"),
			stringField(data, "addressLine2"),
			stringField(data, "addressLine3"),
			stringField(data, "comment"),
		)
		if cmdErr != nil {
			return s.fail(c, operation, cmdErr)
		}

		created, handleErr := s.addAddressHandler.Handle(c.Request().Context(), cmd)
		if handleErr != nil {
			return s.fail(c, operation, handleErr)
		}

		return respond(c, http.StatusOK, addressResource(created))
	}

	cmd, err := commands.NewUpdateAddressCommand(
		addressID,
		transportationID,
		actor.ID(),
		addressType,
		stringField(data, "alias"),
		stringField(data, "contact"),
		phone,
		stringField(data, "city"),
		countryName,
		stringField(data, "addressLine1"),
		stringField(data, "addressLine2"),
		stringField(data, "addressLine3"),
		stringField(data, "comment"),
	)
	if err != nil {
		return s.fail(c, operation, err)
	}

	updated, err := s.updateAddressHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, operation, err)
	}

	return respond(c, http.StatusOK, addressResource(updated))
}
