package model

import "errors"

// ドメイン層のエラー（入力の不変条件違反）
var (
	// 商品IDが不正（0以下）
	ErrInvalidProductID = errors.New("invalid product id")

	// 商品名が不正（空 / 255文字超）
	ErrInvalidProductName = errors.New("invalid product name")

	// 金額が不正（負 / 上限超）
	ErrInvalidMoney = errors.New("invalid money value")

	// 在庫数が不正（負）
	ErrInvalidStock = errors.New("invalid stock value")

	// 在庫不足
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ドメインエラーかどうか
func IsDomainError(err error) bool {
	return errors.Is(err, ErrInvalidProductID) ||
		errors.Is(err, ErrInvalidProductName) ||
		errors.Is(err, ErrInvalidMoney) ||
		errors.Is(err, ErrInvalidStock) ||
		errors.Is(err, ErrInsufficientStock)
}
