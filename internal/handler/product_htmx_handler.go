package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HTMX用の部分更新エンドポイント
// レスポンスはページ断片（カード1枚 or カード一覧）
type ProductHtmxHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHtmxHandler(uc *usecase.ProductUsecase) *ProductHtmxHandler {
	return &ProductHtmxHandler{uc: uc}
}

func (h *ProductHtmxHandler) RegisterRoutes(e *echo.Echo) {
	htmx := e.Group("/htmx")

	htmx.GET("/products", h.list)
	htmx.POST("/products", h.create)
	htmx.PUT("/products/:id", h.update)
	htmx.DELETE("/products/:id", h.remove)
}

// 検索語searchで絞った一覧の断片を返す
func (h *ProductHtmxHandler) list(c echo.Context) error {
	var query *string
	if v := c.QueryParam("search"); v != "" {
		query = &v
	}

	products, err := h.uc.SearchProducts(c.Request().Context(), usecase.SearchProductsQuery{Query: query})
	if err != nil {
		return writePageError(c, err)
	}
	return c.Render(http.StatusOK, "product_list.html", map[string]any{
		"Products": products,
	})
}

// フォームから作成し、新しいカード1枚を返す
func (h *ProductHtmxHandler) create(c echo.Context) error {
	var in usecase.CreateProductInput
	if err := c.Bind(&in); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writePageError(c, err)
	}
	return c.Render(http.StatusOK, "product_card.html", p)
}

// フォームから更新し、更新後のカードを返す
func (h *ProductHtmxHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	var in usecase.UpdateProductInput
	if err := c.Bind(&in); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, in)
	if err != nil {
		return writePageError(c, err)
	}
	return c.Render(http.StatusOK, "product_card.html", p)
}

// 削除。空のレスポンスでHTMX側の要素が消える
func (h *ProductHtmxHandler) remove(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	deleted, err := h.uc.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return writePageError(c, err)
	}
	if !deleted {
		return c.NoContent(http.StatusNotFound)
	}
	return c.HTML(http.StatusOK, "")
}
