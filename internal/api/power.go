package api

import (
	"net/http"

	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/labstack/echo/v4"
)

type PowerState struct {
	Mode string `json:"mode"`
}

func registerPowerEndpoints(rest *echo.Echo, store *ec.Store) {
	rest.GET("/power/", func(c echo.Context) error {
		mode, err := store.ReadString(ec.PowerModeEndpoint)
		if err != nil {
			return returnNotFound(c, "power")
		}
		return c.JSONPretty(http.StatusOK, PowerState{Mode: mode}, indentationChar)
	})
}
