package http

import (
	"errors"
	"net/http"
	"strconv"

	"shipping/internal/adapters/in/http/requests"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ContentTypeJSONAPI is the media type of every JSON response.
const ContentTypeJSONAPI = "application/vnd.api+json"

// apiError is one entry of the JSON:API error envelope.
type apiError struct {
	Status string       `json:"status"`
	Code   string       `json:"code,omitempty"`
	Title  string       `json:"title"`
	Detail string       `json:"detail,omitempty"`
	Source *errorSource `json:"source,omitempty"`
}

type errorSource struct {
	Pointer string `json:"pointer"`
}

type errorEnvelope struct {
	Errors []apiError `json:"errors"`
}

// respond writes a payload with the JSON:API media type.
func respond(c echo.Context, status int, payload any) error {
	c.Response().Header().Set(echo.HeaderContentType, ContentTypeJSONAPI)
	return c.JSON(status, payload)
}

// respondError maps an application error onto the JSON:API error envelope.
// Business rule violations carry their own status and are rendered verbatim;
// anything unexpected becomes an opaque 500.
func respondError(c echo.Context, err error) error {
	var businessErr *errs.BusinessError
	if errors.As(err, &businessErr) {
		return respond(c, businessErr.Status, errorEnvelope{Errors: []apiError{{
			Status: strconv.Itoa(businessErr.Status),
			Code:   statusCode(businessErr.Status),
			Title:  businessErr.Message,
		}}})
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return respond(c, http.StatusNotFound, errorEnvelope{Errors: []apiError{{
			Status: "404",
			Code:   "not_found",
			Title:  "Resource not found",
			Detail: err.Error(),
		}}})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return respond(c, http.StatusUnprocessableEntity, errorEnvelope{Errors: []apiError{{
			Status: "422",
			Code:   "invalid_input",
			Title:  "Invalid input",
			Detail: err.Error(),
		}}})
	}

	return respond(c, http.StatusInternalServerError, errorEnvelope{Errors: []apiError{{
		Status: "500",
		Code:   "internal_error",
		Title:  "Internal server error",
	}}})
}

// respondValidationErrors renders a field→messages map as a 422 envelope
// with one entry per message, pointing at the failing attribute.
func respondValidationErrors(c echo.Context, validationErrors requests.ValidationErrors) error {
	entries := make([]apiError, 0, len(validationErrors))
	for field, messages := range validationErrors {
		for _, message := range messages {
			entries = append(entries, apiError{
				Status: "422",
				Code:   "validation_failed",
				Title:  message,
				Source: &errorSource{Pointer: "/data/attributes/" + field},
			})
		}
	}

	return respond(c, http.StatusUnprocessableEntity, errorEnvelope{Errors: entries})
}

// isExpectedError reports whether the error is a regular domain outcome
// rather than an infrastructure failure.
func isExpectedError(err error) bool {
	var businessErr *errs.BusinessError
	return errors.As(err, &businessErr) ||
		errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

func statusCode(status int) string {
	switch status {
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusUnprocessableEntity:
		return "unprocessable_entity"
	default:
		return "error"
	}
}
