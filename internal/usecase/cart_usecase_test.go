package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func assertHTTPStatus(t *testing.T, err error, want int) {
	t.Helper()
	if assert.Error(t, err) {
		he, ok := usecase.AsHTTPError(err)
		if assert.True(t, ok, "err=%v is not an HTTPError", err) {
			assert.Equal(t, want, he.Status)
		}
	}
}

// Test: 同じ商品をもう一度追加すると数量が加算される
func TestCartUsecase_AddToCart_MergesQuantity(t *testing.T) {
	cartRepo := new(CartRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(101)).
		Return(model.Product{ID: 101, Name: "Mug", Price: decimal.NewFromFloat(8.00), IsActive: true}, nil)

	// 既にqty=2で入っている
	cartRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(101)).
		Return(model.CartItem{ID: 7, UserID: 1, ProductID: 101, Quantity: 2}, nil)

	// 2 + 3 = 5 になる
	cartRepo.On("UpdateQuantity", mock.Anything, int64(7), int64(5)).Return(nil)

	err := uc.AddToCart(context.Background(), 1, 101, 3)
	assert.NoError(t, err)

	cartRepo.AssertExpectations(t)
	cartRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: カートに無い商品は新規行が作られる
func TestCartUsecase_AddToCart_CreatesNewLine(t *testing.T) {
	cartRepo := new(CartRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	productRepo.On("FindByID", mock.Anything, int64(101)).
		Return(model.Product{ID: 101, Name: "Mug", Price: decimal.NewFromFloat(8.00), IsActive: true}, nil)

	cartRepo.On("FindByUserAndProduct", mock.Anything, int64(1), int64(101)).
		Return(model.CartItem{}, repo.ErrNotFound)

	cartRepo.On("Create", mock.Anything, model.CartItem{UserID: 1, ProductID: 101, Quantity: 2}).
		Return(model.CartItem{ID: 9, UserID: 1, ProductID: 101, Quantity: 2}, nil)

	err := uc.AddToCart(context.Background(), 1, 101, 2)
	assert.NoError(t, err)

	cartRepo.AssertExpectations(t)
}

// Test: 数量0の更新は明細の削除になる
func TestCartUsecase_UpdateCartItem_ZeroDeletes(t *testing.T) {
	cartRepo := new(CartRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	cartRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.CartItem{ID: 7, UserID: 1, ProductID: 101, Quantity: 2}, nil)
	cartRepo.On("DeleteByID", mock.Anything, int64(7)).Return(nil)

	err := uc.UpdateCartItem(context.Background(), 1, 7, 0)
	assert.NoError(t, err)

	cartRepo.AssertExpectations(t)
	cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
}

// Test: 他人の明細は404
func TestCartUsecase_UpdateCartItem_NotOwned(t *testing.T) {
	cartRepo := new(CartRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	cartRepo.On("FindByID", mock.Anything, int64(7)).
		Return(model.CartItem{ID: 7, UserID: 99, ProductID: 101, Quantity: 2}, nil)

	err := uc.UpdateCartItem(context.Background(), 1, 7, 3)
	assertHTTPStatus(t, err, http.StatusNotFound)

	cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

// Test: 数量0以下の追加はバリデーションエラー
func TestCartUsecase_AddToCart_InvalidQuantity(t *testing.T) {
	cartRepo := new(CartRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	err := uc.AddToCart(context.Background(), 1, 101, 0)
	assertHTTPStatus(t, err, http.StatusBadRequest)

	productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// Test: カート取得は小計と合計を計算する
func TestCartUsecase_GetCart_Totals(t *testing.T) {
	cartRepo := new(CartRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 101, Quantity: 2},
		{ID: 2, UserID: 1, ProductID: 102, Quantity: 1},
	}, nil)
	productRepo.On("FindByID", mock.Anything, int64(101)).
		Return(model.Product{ID: 101, Name: "Mug", Price: decimal.NewFromFloat(10.00), IsActive: true}, nil)
	productRepo.On("FindByID", mock.Anything, int64(102)).
		Return(model.Product{ID: 102, Name: "Pen", Price: decimal.NewFromFloat(5.50), IsActive: true}, nil)

	out, err := uc.GetCart(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, int64(3), out.TotalItems)
	assert.True(t, out.TotalPrice.Equal(decimal.NewFromFloat(25.50)), "total=%s", out.TotalPrice)
}
