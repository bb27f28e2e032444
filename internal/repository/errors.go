package repository

import "errors"

// 永続化層のエラー
var (
	// DB接続に失敗
	ErrConnectionFailed = errors.New("connection failed")

	// クエリの実行に失敗
	ErrQueryFailed = errors.New("query failed")

	// 対象の行が存在しない
	ErrNotFound = errors.New("not found")

	// 一意制約などの制約違反
	ErrConstraintViolation = errors.New("constraint violation")

	// 同時更新の衝突（現状はlast write winsのため発生しない）
	ErrConcurrentModification = errors.New("concurrent modification")

	// その他の内部エラー
	ErrInternal = errors.New("internal repository error")
)
