package repository

import (
	"app/internal/domain/model"
	"context"
)

// 商品の永続化（保存・取得）だけを約束。
// 見つからない場合は ErrNotFound を返す。
type ProductRepository interface {
	// 全件を作成日時の新しい順で返す
	FindAll(ctx context.Context) ([]model.Product, error)

	// IDで1件取得
	FindByID(ctx context.Context, id model.ProductID) (model.Product, error)

	// 名前または説明の部分一致検索（大文字小文字を区別しない）
	SearchByName(ctx context.Context, query string) ([]model.Product, error)

	// 新規行を挿入し、採番済みIDとDBのタイムスタンプ付きで返す
	Save(ctx context.Context, p model.Product) (model.Product, error)

	// IDで全列更新。該当行がなければ ErrNotFound
	Update(ctx context.Context, p model.Product) (model.Product, error)

	// 行を削除。削除できたかを返す
	Delete(ctx context.Context, id model.ProductID) (bool, error)

	// 存在チェック
	Exists(ctx context.Context, id model.ProductID) (bool, error)

	// 採番のプレースホルダ。実IDは Save 時のauto incrementが正
	NextID(ctx context.Context) (model.ProductID, error)
}
