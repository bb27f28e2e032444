package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

// productsテーブルの行。ドメインのProductとは分離する
type productRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	Stock       int64     `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (productRecord) TableName() string {
	return "products"
}

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// Init はスキーマを作成し、テーブルが空なら初期データを投入する
func (r *ProductGormRepository) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&productRecord{}); err != nil {
		return fmt.Errorf("%w: migrate: %v", repo.ErrInternal, err)
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&productRecord{}).Count(&count).Error; err != nil {
		return wrapGormError(err)
	}
	if count == 0 {
		return r.seed(ctx)
	}
	return nil
}

// 初期データ（固定の5商品）
func (r *ProductGormRepository) seed(ctx context.Context) error {
	seeds := []struct {
		name        string
		description string
		price       float64
		stock       int64
	}{
		{"MacBook Pro 16\"", "Apple MacBook Pro with M2 chip", 2499.99, 10},
		{"iPhone 15 Pro", "Latest iPhone with titanium design", 999.99, 25},
		{"AirPods Pro", "Wireless earbuds with noise cancellation", 249.99, 50},
		{"iPad Air", "Lightweight tablet for creativity", 599.99, 15},
		{"Apple Watch Ultra", "Adventure-ready smartwatch", 799.99, 8},
	}

	now := time.Now().UTC()
	for _, s := range seeds {
		desc := s.description
		rec := productRecord{
			Name:        s.name,
			Description: &desc,
			Price:       s.price,
			Stock:       s.stock,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return wrapGormError(err)
		}
	}
	return nil
}

// 行→エンティティ。各列を値オブジェクトで再検証する
func recordToProduct(rec productRecord) (model.Product, error) {
	id, err := model.NewProductID(rec.ID)
	if err != nil {
		return model.Product{}, err
	}
	name, err := model.NewProductName(rec.Name)
	if err != nil {
		return model.Product{}, err
	}
	price, err := model.NewMoney(rec.Price)
	if err != nil {
		return model.Product{}, err
	}
	stock, err := model.NewStockQuantity(rec.Stock)
	if err != nil {
		return model.Product{}, err
	}

	// タイムスタンプはDBの値をそのまま使う
	return model.ReconstructProduct(id, name, rec.Description, price, stock, rec.CreatedAt, rec.UpdatedAt), nil
}

func recordsToProducts(recs []productRecord) ([]model.Product, error) {
	products := make([]model.Product, 0, len(recs))
	for _, rec := range recs {
		p, err := recordToProduct(rec)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// 全件を作成日時の新しい順で返す
func (r *ProductGormRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var recs []productRecord
	err := r.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Find(&recs).Error
	if err != nil {
		return nil, wrapGormError(err)
	}
	return recordsToProducts(recs)
}

// IDで1件取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id model.ProductID) (model.Product, error) {
	var rec productRecord
	err := r.db.WithContext(ctx).First(&rec, id.Value()).Error
	if err != nil {
		return model.Product{}, wrapGormError(err)
	}
	return recordToProduct(rec)
}

// 名前または説明の部分一致検索（大文字小文字を区別しない）
func (r *ProductGormRepository) SearchByName(ctx context.Context, query string) ([]model.Product, error) {
	like := "%" + query + "%"

	var recs []productRecord
	// sqlite / postgres 両対応のため lower() で比較する
	err := r.db.WithContext(ctx).
		Where("lower(name) LIKE lower(?) OR lower(description) LIKE lower(?)", like, like).
		Order("created_at desc").Order("id desc").
		Find(&recs).Error
	if err != nil {
		return nil, wrapGormError(err)
	}
	return recordsToProducts(recs)
}

// 新規行を挿入。IDはauto incrementで採番され、採番後の行を読み直して返す
func (r *ProductGormRepository) Save(ctx context.Context, p model.Product) (model.Product, error) {
	rec := productRecord{
		Name:        p.Name().Value(),
		Description: p.Description(),
		Price:       p.Price().Amount(),
		Stock:       p.Stock().Value(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return model.Product{}, wrapGormError(err)
	}

	id, err := model.NewProductID(rec.ID)
	if err != nil {
		return model.Product{}, err
	}
	return r.FindByID(ctx, id)
}

// IDで全列更新。該当行がなければ ErrNotFound
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	res := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ?", p.ID().Value()).
		Updates(map[string]interface{}{
			"name":        p.Name().Value(),
			"description": p.Description(),
			"price":       p.Price().Amount(),
			"stock":       p.Stock().Value(),
			"updated_at":  p.UpdatedAt(),
		})
	if res.Error != nil {
		return model.Product{}, wrapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Product{}, repo.ErrNotFound
	}
	return r.FindByID(ctx, p.ID())
}

// 行を削除。削除できたかを返す
func (r *ProductGormRepository) Delete(ctx context.Context, id model.ProductID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&productRecord{}, id.Value())
	if res.Error != nil {
		return false, wrapGormError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// 存在チェック
func (r *ProductGormRepository) Exists(ctx context.Context, id model.ProductID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&productRecord{}).
		Where("id = ?", id.Value()).
		Count(&count).Error
	if err != nil {
		return false, wrapGormError(err)
	}
	return count > 0, nil
}

// 採番のプレースホルダ。実IDは Save 時のauto incrementが正
func (r *ProductGormRepository) NextID(ctx context.Context) (model.ProductID, error) {
	return model.NewProductID(1)
}

// gormのエラーを永続化層のエラーへ寄せる
func wrapGormError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repo.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", repo.ErrConstraintViolation, err)
	case errors.Is(err, gorm.ErrInvalidDB):
		return fmt.Errorf("%w: %v", repo.ErrConnectionFailed, err)
	default:
		return fmt.Errorf("%w: %v", repo.ErrQueryFailed, err)
	}
}
