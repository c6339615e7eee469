package http

import (
	"net/http"
	"strings"

	"shipping/internal/core/domain/model/client"
	"shipping/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// clientContextKey stores the authenticated client on the echo context.
const clientContextKey = "authenticated_client"

// BearerAuth resolves the Authorization bearer token to a client account.
// Requests without a resolvable token are rejected with 401.
func BearerAuth(clients ports.ClientRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return respondUnauthenticated(c)
			}

			actor, err := clients.FindByToken(c.Request().Context(), token)
			if err != nil {
				return respondError(c, err)
			}
			if actor == nil {
				return respondUnauthenticated(c)
			}

			c.Set(clientContextKey, actor)
			return next(c)
		}
	}
}

// currentClient returns the client resolved by BearerAuth.
func currentClient(c echo.Context) *client.Client {
	actor, _ := c.Get(clientContextKey).(*client.Client)
	return actor
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func respondUnauthenticated(c echo.Context) error {
	return respond(c, http.StatusUnauthorized, errorEnvelope{Errors: []apiError{{
		Status: "401",
		Code:   "unauthenticated",
		Title:  "Unauthenticated",
	}}})
}
