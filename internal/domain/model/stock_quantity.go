package model

import "fmt"

// 在庫数（0以上の整数）
type StockQuantity struct {
	value int64
}

func NewStockQuantity(v int64) (StockQuantity, error) {
	if v < 0 {
		return StockQuantity{}, fmt.Errorf("%w: stock cannot be negative", ErrInvalidStock)
	}
	return StockQuantity{value: v}, nil
}

func (s StockQuantity) Value() int64 {
	return s.value
}

// 在庫ありか
func (s StockQuantity) IsAvailable() bool {
	return s.value > 0
}

// 在庫を減らす（値渡し：新しい値を返す）
func (s StockQuantity) Decrease(amount int64) (StockQuantity, error) {
	if amount < 0 {
		return StockQuantity{}, fmt.Errorf("%w: decrease amount cannot be negative", ErrInvalidStock)
	}
	if s.value < amount {
		return StockQuantity{}, ErrInsufficientStock
	}
	return StockQuantity{value: s.value - amount}, nil
}

// 在庫を増やす（戻し・入荷など）
func (s StockQuantity) Increase(amount int64) (StockQuantity, error) {
	if amount < 0 {
		return StockQuantity{}, fmt.Errorf("%w: increase amount cannot be negative", ErrInvalidStock)
	}
	return StockQuantity{value: s.value + amount}, nil
}
