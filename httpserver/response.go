package httpserver

import (
	"github.com/labstack/echo/v4"
)

const contentTypeJSON = "application/json; charset=utf-8"

// writeJSON sends body with the charset-qualified JSON content type. Echo only
// fills in its own content type when none is set.
func writeJSON(c echo.Context, status int, body interface{}) error {
	c.Response().Header().Set(echo.HeaderContentType, contentTypeJSON)
	return c.JSON(status, body)
}
