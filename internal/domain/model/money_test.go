package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestNewMoney_Bounds(t *testing.T) {
	m, err := model.NewMoney(0)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, m.Amount())

	m, err = model.NewMoney(999999.99)
	assert.NoError(t, err)
	assert.Equal(t, 999999.99, m.Amount())

	_, err = model.NewMoney(-0.01)
	assert.ErrorIs(t, err, model.ErrInvalidMoney)

	_, err = model.NewMoney(1000000.00)
	assert.ErrorIs(t, err, model.ErrInvalidMoney)
}

func TestNewMoney_RoundsHalfUpToTwoDecimals(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{19.999, "20.00"},
		{19.994, "19.99"},
		{19.995, "20.00"},
		{2499.99, "2499.99"},
		{0.005, "0.01"},
	}
	for _, tc := range cases {
		m, err := model.NewMoney(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, m.String(), "input %v", tc.in)
	}
}
