package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// テスト用のインメモリ実装。契約はGORM実装と同じ
type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products map[int64]model.Product
	lastID   int64
}

func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{
		products: make(map[int64]model.Product),
	}
}

// 作成日時の新しい順（同時刻はID降順）
func sortNewestFirst(products []model.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		ci, cj := products[i].CreatedAt(), products[j].CreatedAt()
		if ci.Equal(cj) {
			return products[i].ID().Value() > products[j].ID().Value()
		}
		return ci.After(cj)
	})
}

func (r *ProductMemoryRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	sortNewestFirst(products)
	return products, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id model.ProductID) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id.Value()]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}

func (r *ProductMemoryRepository) SearchByName(ctx context.Context, query string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var products []model.Product
	for _, p := range r.products {
		name := strings.ToLower(p.Name().Value())
		desc := ""
		if p.Description() != nil {
			desc = strings.ToLower(*p.Description())
		}
		if strings.Contains(name, q) || strings.Contains(desc, q) {
			products = append(products, p)
		}
	}
	sortNewestFirst(products)
	return products, nil
}

// IDを採番して保存する。渡されたIDは使わない（auto increment相当）
func (r *ProductMemoryRepository) Save(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	id, err := model.NewProductID(r.lastID)
	if err != nil {
		return model.Product{}, err
	}

	saved := model.ReconstructProduct(
		id, p.Name(), p.Description(), p.Price(), p.Stock(),
		p.CreatedAt(), p.UpdatedAt(),
	)
	r.products[id.Value()] = saved
	return saved, nil
}

func (r *ProductMemoryRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID().Value()]; !ok {
		return model.Product{}, repo.ErrNotFound
	}
	r.products[p.ID().Value()] = p
	return p, nil
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, id model.ProductID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id.Value()]; !ok {
		return false, nil
	}
	delete(r.products, id.Value())
	return true, nil
}

func (r *ProductMemoryRepository) Exists(ctx context.Context, id model.ProductID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.products[id.Value()]
	return ok, nil
}

func (r *ProductMemoryRepository) NextID(ctx context.Context) (model.ProductID, error) {
	return model.NewProductID(1)
}
