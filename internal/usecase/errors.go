package usecase

import "errors"

// アプリケーション層のエラー
// ドメイン層・永続化層のエラーは %w で包んでそのまま上へ伝える
var (
	// 対象の商品が存在しない
	ErrProductNotFound = errors.New("product not found")

	// 入力の検証エラー（予約。現状のフローでは未使用）
	ErrValidation = errors.New("validation error")

	// 認可エラー（予約。現状のフローでは未使用）
	ErrAuthorization = errors.New("authorization error")

	// 内部エラー（予約。現状のフローでは未使用）
	ErrInternal = errors.New("internal error")
)
