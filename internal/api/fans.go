package api

import (
	"net/http"

	"github.com/bosgame-linux/fanctl/internal/fans"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func registerFanEndpoints(rest *echo.Echo) {
	group := rest.Group("/fan")

	group.GET("/", getFans)
	group.GET("/:"+urlParamId+"/", getFan)
}

// returns a list of all fans of the EC
func getFans(c echo.Context) error {
	data := reprint.This(fans.FanMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getFan(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := fans.FanMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, reprint.This(data), indentationChar)
}
