package server

import (
	"app/internal/handler"
	"app/web"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はミドルウェア・Renderer・全ルート登録済みのechoを返す
func New(
	pageH *handler.ProductPageHandler,
	htmxH *handler.ProductHtmxHandler,
	apiH *handler.ProductAPIHandler,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := handler.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))

	RegisterRoutes(e, pageH, htmxH, apiH)
	return e, nil
}

func Start(
	addr string,
	pageH *handler.ProductPageHandler,
	htmxH *handler.ProductHtmxHandler,
	apiH *handler.ProductAPIHandler,
) error {
	e, err := New(pageH, htmxH, apiH)
	if err != nil {
		return err
	}
	return e.Start(addr)
}
