package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID returns the session user id injected by the Auth middleware.
// An empty value means the middleware did not run for this route.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
