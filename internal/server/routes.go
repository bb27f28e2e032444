package server

import (
	"net/http"

	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	pageH *handler.ProductPageHandler,
	htmxH *handler.ProductHtmxHandler,
	apiH *handler.ProductAPIHandler,
) {
	// HTML / HTMX / JSON の3系統
	pageH.RegisterRoutes(e)
	htmxH.RegisterRoutes(e)
	apiH.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
