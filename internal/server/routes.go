package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, d Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server health check")
	})

	api := e.Group("/api")
	d.Auth.RegisterRoutes(api)
	d.Menu.RegisterRoutes(api)
	d.Order.RegisterRoutes(api, d.Verifier)
}
