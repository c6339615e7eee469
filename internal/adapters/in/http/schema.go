package http

import (
	"embed"
	"net/http"

	"shipping/internal/core/domain/model/draft"

	"github.com/labstack/echo/v4"
)

//go:embed schemas/*.json
var stepSchemas embed.FS

// stepSchemaFiles maps wizard step names to their embedded schema file.
var stepSchemaFiles = map[string]string{
	string(draft.TransportationStep):  "schemas/Step01.json",
	string(draft.PickupAddressStep):   "schemas/Step02.json",
	string(draft.DeliveryAddressStep): "schemas/Step03.json",
	string(draft.CargoStep):           "schemas/Step04.json",
	string(draft.ConfirmationStep):    "schemas/Step05.json",
}

// GetTransportationSchema handles GET /api/v1/transportation/create-transportation-schema/:stepId.
// Serves the form schema of one wizard step.
func (s *Server) GetTransportationSchema(c echo.Context) error {
	file, ok := stepSchemaFiles[c.Param("stepId")]
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Step not found"})
	}

	payload, err := stepSchemas.ReadFile(file)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Step not found"})
	}

	return c.Blob(http.StatusOK, ContentTypeJSONAPI, payload)
}
