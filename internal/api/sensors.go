package api

import (
	"net/http"

	"github.com/bosgame-linux/fanctl/internal/sensors"
	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
)

func registerSensorEndpoints(rest *echo.Echo) {
	group := rest.Group("/sensor")

	group.GET("/", getSensors)
	group.GET("/:"+urlParamId+"/", getSensor)
}

// returns a list of all telemetry sensors
func getSensors(c echo.Context) error {
	data := reprint.This(sensors.SensorMap.Items())
	return c.JSONPretty(http.StatusOK, data, indentationChar)
}

func getSensor(c echo.Context) error {
	id := c.Param(urlParamId)
	data, exists := sensors.SensorMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	}
	return c.JSONPretty(http.StatusOK, reprint.This(data), indentationChar)
}
