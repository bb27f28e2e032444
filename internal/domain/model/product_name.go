package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const productNameMaxLen = 255

// 商品名（trim済み・1〜255文字）
type ProductName struct {
	value string
}

// trimは構築時に行う（利用時ではない）
func NewProductName(v string) (ProductName, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return ProductName{}, fmt.Errorf("%w: name cannot be empty", ErrInvalidProductName)
	}
	if utf8.RuneCountInString(trimmed) > productNameMaxLen {
		return ProductName{}, fmt.Errorf("%w: name too long", ErrInvalidProductName)
	}
	return ProductName{value: trimmed}, nil
}

func (n ProductName) Value() string {
	return n.value
}
