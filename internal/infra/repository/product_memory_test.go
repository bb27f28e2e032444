package repository_test

import (
	"context"
	"testing"
	"time"

	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRepository_SaveAssignsSequentialIDs(t *testing.T) {
	r := infraRepo.NewProductMemoryRepository()
	ctx := context.Background()

	a, err := r.Save(ctx, newEntity(t, "A", nil, 1.00, 1))
	assert.NoError(t, err)
	b, err := r.Save(ctx, newEntity(t, "B", nil, 2.00, 2))
	assert.NoError(t, err)

	assert.Equal(t, int64(1), a.ID().Value())
	assert.Equal(t, int64(2), b.ID().Value())
}

func TestMemoryRepository_FindAllNewestFirst(t *testing.T) {
	r := infraRepo.NewProductMemoryRepository()
	ctx := context.Background()

	_, err := r.Save(ctx, newEntity(t, "First", nil, 1.00, 1))
	assert.NoError(t, err)

	time.Sleep(2 * time.Millisecond)

	second, err := r.Save(ctx, newEntity(t, "Second", nil, 2.00, 2))
	assert.NoError(t, err)

	products, err := r.FindAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(products))
	assert.Equal(t, second.ID().Value(), products[0].ID().Value())
}

func TestMemoryRepository_SearchNameAndDescription(t *testing.T) {
	r := infraRepo.NewProductMemoryRepository()
	ctx := context.Background()

	desc := "wireless earbuds"
	_, err := r.Save(ctx, newEntity(t, "AirPods Pro", &desc, 249.99, 50))
	assert.NoError(t, err)
	_, err = r.Save(ctx, newEntity(t, "MacBook Pro 16\"", nil, 2499.99, 10))
	assert.NoError(t, err)

	// 名前に対して大文字小文字を区別しない
	products, err := r.SearchByName(ctx, "MAC")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(products))
	assert.Equal(t, "MacBook Pro 16\"", products[0].Name().Value())

	// 説明にもマッチする
	products, err = r.SearchByName(ctx, "Wireless")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(products))
	assert.Equal(t, "AirPods Pro", products[0].Name().Value())
}

func TestMemoryRepository_UpdateNotFound(t *testing.T) {
	r := infraRepo.NewProductMemoryRepository()
	ctx := context.Background()

	ghost := newEntity(t, "Ghost", nil, 1.00, 1)
	_, err := r.Update(ctx, ghost)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMemoryRepository_DeleteAndExists(t *testing.T) {
	r := infraRepo.NewProductMemoryRepository()
	ctx := context.Background()

	saved, err := r.Save(ctx, newEntity(t, "Widget", nil, 9.99, 3))
	assert.NoError(t, err)

	exists, err := r.Exists(ctx, saved.ID())
	assert.NoError(t, err)
	assert.True(t, exists)

	deleted, err := r.Delete(ctx, saved.ID())
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = r.Delete(ctx, saved.ID())
	assert.NoError(t, err)
	assert.False(t, deleted)

	_, err = r.FindByID(ctx, saved.ID())
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMemoryRepository_TimestampsPreserved(t *testing.T) {
	r := infraRepo.NewProductMemoryRepository()
	ctx := context.Background()

	p := newEntity(t, "Widget", nil, 9.99, 3)
	saved, err := r.Save(ctx, p)
	assert.NoError(t, err)

	got, err := r.FindByID(ctx, saved.ID())
	assert.NoError(t, err)
	assert.Equal(t, p.CreatedAt(), got.CreatedAt())
	assert.Equal(t, p.UpdatedAt(), got.UpdatedAt())
}
