package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestNewProductID(t *testing.T) {
	id, err := model.NewProductID(1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id.Value())

	_, err = model.NewProductID(0)
	assert.ErrorIs(t, err, model.ErrInvalidProductID)

	_, err = model.NewProductID(-5)
	assert.ErrorIs(t, err, model.ErrInvalidProductID)
}
