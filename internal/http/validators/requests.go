package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func RequireField(value, name string) error {
	if value == "" {
		return echo.NewHTTPError(http.StatusBadRequest, name+" is required")
	}
	return nil
}

func RequireCredentials(username, password string) error {
	if username == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	return nil
}

func RequireIDs(ids []string, name string) error {
	if len(ids) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, name+" must not be empty")
	}
	for _, id := range ids {
		if id == "" {
			return echo.NewHTTPError(http.StatusBadRequest, name+" must not contain empty ids")
		}
	}
	return nil
}
