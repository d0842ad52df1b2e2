package api

import (
	"net/http"

	"github.com/bosgame-linux/fanctl/internal/control"
	"github.com/bosgame-linux/fanctl/internal/ec"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	urlParamId      = "id"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}
)

// CreateRestService builds the read-only REST service exposing the
// current state of fans, sensors and the power domain.
func CreateRestService(store *ec.Store) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())
	echoRest.Use(echoprometheus.NewMiddleware("fanctl"))

	echoRest.GET("/alive/", isAlive)

	registerFanEndpoints(echoRest)
	registerSensorEndpoints(echoRest)
	registerPowerEndpoints(echoRest, store)
	registerStatusEndpoints(echoRest, control.NewController(store))

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, Result{
		Name:    "Not found",
		Message: "No entry with id '" + id + "' found",
	}, indentationChar)
}
