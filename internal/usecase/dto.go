package usecase

import (
	"time"

	"app/internal/domain/model"
)

// POST /products の入力DTO
type CreateProductInput struct {
	Name        string  `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Stock       int64   `json:"stock" form:"stock"`
}

// PUT /products/:id の入力DTO
// nilのフィールドは「変更なし」。descriptionは空文字で「説明を消す」
type UpdateProductInput struct {
	Name        *string  `json:"name" form:"name"`
	Description *string  `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price"`
	Stock       *int64   `json:"stock" form:"stock"`
}

// 検索の入力DTO
// Limit / Offset は契約上の形だけで、現状は使わない
type SearchProductsQuery struct {
	Query  *string `json:"query" query:"query"`
	Limit  *int    `json:"limit" query:"limit"`
	Offset *int    `json:"offset" query:"offset"`
}

// 商品の出力DTO
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int64     `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID().Value(),
		Name:        p.Name().Value(),
		Description: p.Description(),
		Price:       p.Price().Amount(),
		Stock:       p.Stock().Value(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func newProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
