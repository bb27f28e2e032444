package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /api/products のJSON API
type ProductAPIHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductAPIHandler(uc *usecase.ProductUsecase) *ProductAPIHandler {
	return &ProductAPIHandler{uc: uc}
}

func (h *ProductAPIHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/products", h.list)
	api.GET("/products/:id", h.detail)
	api.POST("/products", h.create)
	api.PUT("/products/:id", h.update)
	api.DELETE("/products/:id", h.remove)
}

func (h *ProductAPIHandler) list(c echo.Context) error {
	products, err := h.uc.GetAllProducts(c.Request().Context())
	if err != nil {
		return writeAPIError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse(products))
}

func (h *ProductAPIHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
	}

	p, err := h.uc.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return writeAPIError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse(p))
}

func (h *ProductAPIHandler) create(c echo.Context) error {
	var in usecase.CreateProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid body"))
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeAPIError(c, err)
	}
	return c.JSON(http.StatusCreated, successResponse(p))
}

func (h *ProductAPIHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
	}

	var in usecase.UpdateProductInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid body"))
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, in)
	if err != nil {
		return writeAPIError(c, err)
	}
	return c.JSON(http.StatusOK, successResponse(p))
}

func (h *ProductAPIHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
	}

	deleted, err := h.uc.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return writeAPIError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, errorResponse("product not found"))
	}

	res := successResponse(nil)
	res.Message = "product deleted"
	return c.JSON(http.StatusOK, res)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
