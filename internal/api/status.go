package api

import (
	"net/http"

	"github.com/bosgame-linux/fanctl/internal/control"
	"github.com/labstack/echo/v4"
)

func registerStatusEndpoints(rest *echo.Echo, controller *control.Controller) {
	rest.GET("/status/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, controller.Status(), indentationChar)
	})
}
