package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"swachvillage/internal/auth"
	apperrors "swachvillage/internal/errors"
)

// MessageResponse is the generic `{message}` body used by simple endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// httpError converts a service error into the client-facing `{message}`
// response. Store errors are logged here and never shown to clients.
func httpError(c echo.Context, err error) error {
	he := apperrors.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		c.Logger().Error(err)
	}
	return echo.NewHTTPError(he.StatusCode, he.Message)
}

// identity fetches the verified caller injected by the authorization guard.
func identity(c echo.Context) (auth.Identity, error) {
	id, ok := auth.IdentityFromContext(c)
	if !ok {
		return auth.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return id, nil
}
