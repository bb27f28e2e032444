package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// 商品を作成する。検証は最初の違反で打ち切り
func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (ProductResponse, error) {
	name, err := model.NewProductName(in.Name)
	if err != nil {
		return ProductResponse{}, err
	}
	price, err := model.NewMoney(in.Price)
	if err != nil {
		return ProductResponse{}, err
	}
	stock, err := model.NewStockQuantity(in.Stock)
	if err != nil {
		return ProductResponse{}, err
	}

	// プレースホルダの採番。実IDはSave時のauto incrementが正
	id, err := u.productRepo.NextID(ctx)
	if err != nil {
		return ProductResponse{}, fmt.Errorf("create product: %w", err)
	}

	p := model.NewProduct(id, name, in.Description, price, stock)

	saved, err := u.productRepo.Save(ctx, p)
	if err != nil {
		return ProductResponse{}, fmt.Errorf("create product: %w", err)
	}
	return NewProductResponse(saved), nil
}

// 全商品をリポジトリの並び（作成日時の新しい順）のまま返す
func (u *ProductUsecase) GetAllProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all products: %w", err)
	}
	return newProductResponses(products), nil
}

func (u *ProductUsecase) GetProductByID(ctx context.Context, id int64) (ProductResponse, error) {
	productID, err := model.NewProductID(id)
	if err != nil {
		return ProductResponse{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductResponse{}, ErrProductNotFound
	}
	if err != nil {
		return ProductResponse{}, fmt.Errorf("get product: %w", err)
	}
	return NewProductResponse(p), nil
}

// 商品を部分更新する。リクエストにあるフィールドだけを検証・反映する
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (ProductResponse, error) {
	productID, err := model.NewProductID(id)
	if err != nil {
		return ProductResponse{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductResponse{}, ErrProductNotFound
	}
	if err != nil {
		return ProductResponse{}, fmt.Errorf("update product: %w", err)
	}

	var name *model.ProductName
	if in.Name != nil {
		n, err := model.NewProductName(*in.Name)
		if err != nil {
			return ProductResponse{}, err
		}
		name = &n
	}

	var price *model.Money
	if in.Price != nil {
		m, err := model.NewMoney(*in.Price)
		if err != nil {
			return ProductResponse{}, err
		}
		price = &m
	}

	var stock *model.StockQuantity
	if in.Stock != nil {
		s, err := model.NewStockQuantity(*in.Stock)
		if err != nil {
			return ProductResponse{}, err
		}
		stock = &s
	}

	// descriptionの扱い:
	//   nil      = 変更しない
	//   空文字   = 説明を消す（NULLにする）
	//   それ以外 = 置き換える
	var description **string
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			var cleared *string
			description = &cleared
		} else {
			d := *in.Description
			dp := &d
			description = &dp
		}
	}

	if err := p.Update(name, description, price, stock); err != nil {
		return ProductResponse{}, err
	}

	updated, err := u.productRepo.Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductResponse{}, ErrProductNotFound
	}
	if err != nil {
		return ProductResponse{}, fmt.Errorf("update product: %w", err)
	}
	return NewProductResponse(updated), nil
}

// 商品を削除する。存在しなければ ErrProductNotFound
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	productID, err := model.NewProductID(id)
	if err != nil {
		return false, err
	}

	exists, err := u.productRepo.Exists(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	if !exists {
		return false, ErrProductNotFound
	}

	deleted, err := u.productRepo.Delete(ctx, productID)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return deleted, nil
}

// 検索語があれば部分一致検索、なければ全件
func (u *ProductUsecase) SearchProducts(ctx context.Context, q SearchProductsQuery) ([]ProductResponse, error) {
	if q.Query != nil && strings.TrimSpace(*q.Query) != "" {
		products, err := u.productRepo.SearchByName(ctx, strings.TrimSpace(*q.Query))
		if err != nil {
			return nil, fmt.Errorf("search products: %w", err)
		}
		return newProductResponses(products), nil
	}

	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return newProductResponses(products), nil
}
