package model

import "time"

// 商品（集約ルート）
// 値オブジェクト＋タイムスタンプを持つ。不変条件: UpdatedAt >= CreatedAt
type Product struct {
	id          ProductID
	name        ProductName
	description *string
	price       Money
	stock       StockQuantity
	createdAt   time.Time
	updatedAt   time.Time
}

// 新規作成。CreatedAt = UpdatedAt = 現在時刻（UTC）
func NewProduct(id ProductID, name ProductName, description *string, price Money, stock StockQuantity) Product {
	now := time.Now().UTC()
	return Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		createdAt:   now,
		updatedAt:   now,
	}
}

// 永続化済みの状態から再構築する。タイムスタンプはDBの値をそのまま使う
func ReconstructProduct(
	id ProductID,
	name ProductName,
	description *string,
	price Money,
	stock StockQuantity,
	createdAt time.Time,
	updatedAt time.Time,
) Product {
	return Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		stock:       stock,
		createdAt:   createdAt.UTC(),
		updatedAt:   updatedAt.UTC(),
	}
}

// 部分更新。nilのフィールドは変更しない。UpdatedAtは常に更新する。
// descriptionは二重ポインタ: nil=変更なし / *nil=説明を消す / **v=置き換え
// errorは将来の拡張用（現状は常にnil）
func (p *Product) Update(name *ProductName, description **string, price *Money, stock *StockQuantity) error {
	if name != nil {
		p.name = *name
	}
	if description != nil {
		p.description = *description
	}
	if price != nil {
		p.price = *price
	}
	if stock != nil {
		p.stock = *stock
	}
	p.updatedAt = time.Now().UTC()
	return nil
}

// Getters
func (p *Product) ID() ProductID { return p.id }
func (p *Product) Name() ProductName { return p.name }
func (p *Product) Description() *string { return p.description }
func (p *Product) Price() Money { return p.price }
func (p *Product) Stock() StockQuantity { return p.stock }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
