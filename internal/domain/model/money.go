package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// 金額上限（999999.99）
var moneyMax = decimal.RequireFromString("999999.99")

// 金額（0以上・上限以下・小数2桁に丸め済み）
type Money struct {
	amount decimal.Decimal
}

// 構築時に四捨五入（round half up）で小数2桁へ丸める
func NewMoney(v float64) (Money, error) {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() {
		return Money{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidMoney)
	}
	if d.GreaterThan(moneyMax) {
		return Money{}, fmt.Errorf("%w: price too high", ErrInvalidMoney)
	}
	return Money{amount: d.Round(2)}, nil
}

func (m Money) Amount() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// 表示用（例: "2499.99"）
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
