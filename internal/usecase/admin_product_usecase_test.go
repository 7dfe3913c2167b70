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

// Test: 商品削除は論理削除でカートとウィッシュリストも掃除する
func TestAdminProductUsecase_Delete_CleansUp(t *testing.T) {
	productRepo := new(ProductRepoMock)
	categoryRepo := new(CategoryRepoMock)
	cartRepo := new(CartRepoMock)
	wishlistRepo := new(WishlistRepoMock)

	tx := &TxManagerMock{Repos: &TxReposMock{
		products: productRepo,
		cart:     cartRepo,
		wishlist: wishlistRepo,
	}}
	uc := usecase.NewAdminProductUsecase(tx, productRepo, categoryRepo)
	tx.On("WithinTx", mock.Anything).Return(nil)

	productRepo.On("FindByID", mock.Anything, int64(101)).
		Return(model.Product{ID: 101, Name: "Mug"}, nil)
	cartRepo.On("DeleteByProductID", mock.Anything, int64(101)).Return(nil)
	wishlistRepo.On("DeleteByProductID", mock.Anything, int64(101)).Return(nil)
	productRepo.On("SoftDelete", mock.Anything, int64(101)).Return(nil)

	err := uc.Delete(context.Background(), 101)
	assert.NoError(t, err)

	cartRepo.AssertExpectations(t)
	wishlistRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

// Test: 価格0.01未満は弾く
func TestAdminProductUsecase_Create_MinPrice(t *testing.T) {
	productRepo := new(ProductRepoMock)
	categoryRepo := new(CategoryRepoMock)
	tx := &TxManagerMock{Repos: &TxReposMock{products: productRepo}}
	uc := usecase.NewAdminProductUsecase(tx, productRepo, categoryRepo)

	_, err := uc.Create(context.Background(), usecase.AdminProductInput{
		Name:       "Mug",
		Price:      decimal.Zero,
		Stock:      1,
		CategoryID: 3,
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 存在しないカテゴリへの登録は400
func TestAdminProductUsecase_Create_UnknownCategory(t *testing.T) {
	productRepo := new(ProductRepoMock)
	categoryRepo := new(CategoryRepoMock)
	tx := &TxManagerMock{Repos: &TxReposMock{products: productRepo}}
	uc := usecase.NewAdminProductUsecase(tx, productRepo, categoryRepo)

	categoryRepo.On("FindByID", mock.Anything, int64(3)).
		Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.Create(context.Background(), usecase.AdminProductInput{
		Name:       "Mug",
		Price:      decimal.NewFromFloat(8.00),
		Stock:      1,
		CategoryID: 3,
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}
