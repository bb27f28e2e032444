package model_test

import (
	"testing"
	"time"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func mustProduct(t *testing.T, id int64, name string, desc *string, price float64, stock int64) model.Product {
	t.Helper()

	pid, err := model.NewProductID(id)
	assert.NoError(t, err)
	pname, err := model.NewProductName(name)
	assert.NoError(t, err)
	money, err := model.NewMoney(price)
	assert.NoError(t, err)
	qty, err := model.NewStockQuantity(stock)
	assert.NoError(t, err)

	return model.NewProduct(pid, pname, desc, money, qty)
}

func TestNewProduct_StampsTimestamps(t *testing.T) {
	before := time.Now().UTC()
	p := mustProduct(t, 1, "Widget", nil, 9.99, 3)
	after := time.Now().UTC()

	assert.Equal(t, p.CreatedAt(), p.UpdatedAt())
	assert.False(t, p.CreatedAt().Before(before))
	assert.False(t, p.CreatedAt().After(after))
}

func TestReconstructProduct_KeepsStoredTimestamps(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 3, 2, 12, 30, 0, 0, time.UTC)

	pid, _ := model.NewProductID(7)
	name, _ := model.NewProductName("Widget")
	price, _ := model.NewMoney(9.99)
	stock, _ := model.NewStockQuantity(3)

	p := model.ReconstructProduct(pid, name, nil, price, stock, created, updated)

	assert.Equal(t, created, p.CreatedAt())
	assert.Equal(t, updated, p.UpdatedAt())
}

func TestProductUpdate_ReplacesOnlyProvidedFields(t *testing.T) {
	desc := "original description"
	p := mustProduct(t, 1, "Widget", &desc, 9.99, 3)
	createdAt := p.CreatedAt()

	newName, _ := model.NewProductName("Gadget")
	err := p.Update(&newName, nil, nil, nil)
	assert.NoError(t, err)

	assert.Equal(t, "Gadget", p.Name().Value())
	assert.Equal(t, "original description", *p.Description())
	assert.Equal(t, 9.99, p.Price().Amount())
	assert.Equal(t, int64(3), p.Stock().Value())
	assert.Equal(t, createdAt, p.CreatedAt())
	assert.False(t, p.UpdatedAt().Before(createdAt))
}

func TestProductUpdate_DescriptionDoubleOption(t *testing.T) {
	desc := "keep me"
	p := mustProduct(t, 1, "Widget", &desc, 9.99, 3)

	// nil = 変更なし
	assert.NoError(t, p.Update(nil, nil, nil, nil))
	assert.Equal(t, "keep me", *p.Description())

	// *nil = 説明を消す
	var cleared *string
	assert.NoError(t, p.Update(nil, &cleared, nil, nil))
	assert.Nil(t, p.Description())

	// **v = 置き換え
	replaced := "new description"
	rp := &replaced
	assert.NoError(t, p.Update(nil, &rp, nil, nil))
	assert.Equal(t, "new description", *p.Description())
}

func TestProductUpdate_AlwaysRefreshesUpdatedAt(t *testing.T) {
	p := mustProduct(t, 1, "Widget", nil, 9.99, 3)
	first := p.UpdatedAt()

	time.Sleep(5 * time.Millisecond)
	assert.NoError(t, p.Update(nil, nil, nil, nil))

	assert.True(t, p.UpdatedAt().After(first))
	assert.True(t, !p.UpdatedAt().Before(p.CreatedAt()))
}
