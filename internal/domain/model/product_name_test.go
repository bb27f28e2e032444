package model_test

import (
	"strings"
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestNewProductName_TrimsAtConstruction(t *testing.T) {
	n, err := model.NewProductName("  MacBook Pro  ")
	assert.NoError(t, err)
	assert.Equal(t, "MacBook Pro", n.Value())
}

func TestNewProductName_EmptyFails(t *testing.T) {
	_, err := model.NewProductName("")
	assert.ErrorIs(t, err, model.ErrInvalidProductName)

	_, err = model.NewProductName("   ")
	assert.ErrorIs(t, err, model.ErrInvalidProductName)
}

func TestNewProductName_MaxLength(t *testing.T) {
	ok := strings.Repeat("a", 255)
	n, err := model.NewProductName(ok)
	assert.NoError(t, err)
	assert.Equal(t, ok, n.Value())

	_, err = model.NewProductName(strings.Repeat("a", 256))
	assert.ErrorIs(t, err, model.ErrInvalidProductName)
}

func TestNewProductName_TrimBeforeLengthCheck(t *testing.T) {
	// trim後が255文字ちょうどなら有効
	padded := "  " + strings.Repeat("a", 255) + "  "
	n, err := model.NewProductName(padded)
	assert.NoError(t, err)
	assert.Equal(t, 255, len(n.Value()))
}
