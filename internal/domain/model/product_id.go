package model

import "fmt"

// 商品ID（正の64bit整数）
type ProductID struct {
	value int64
}

func NewProductID(v int64) (ProductID, error) {
	if v <= 0 {
		return ProductID{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidProductID, v)
	}
	return ProductID{value: v}, nil
}

func (id ProductID) Value() int64 {
	return id.value
}
