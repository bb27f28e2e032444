package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ブラウザ向けのHTMLページ
type ProductPageHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductPageHandler(uc *usecase.ProductUsecase) *ProductPageHandler {
	return &ProductPageHandler{uc: uc}
}

func (h *ProductPageHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.home)
	e.GET("/products/:id", h.detail)
}

// 商品一覧ページ（検索フォーム＋追加フォーム付き）
func (h *ProductPageHandler) home(c echo.Context) error {
	products, err := h.uc.GetAllProducts(c.Request().Context())
	if err != nil {
		return writePageError(c, err)
	}
	return c.Render(http.StatusOK, "products.html", map[string]any{
		"Products": products,
	})
}

// 商品詳細ページ
func (h *ProductPageHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	p, err := h.uc.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return writePageError(c, err)
	}
	return c.Render(http.StatusOK, "product_detail.html", p)
}
