package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test: 商品が紐付いているカテゴリの削除は409
func TestCategoryUsecase_Delete_WithProductsConflicts(t *testing.T) {
	categoryRepo := new(CategoryRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo, productRepo)

	categoryRepo.On("FindByID", mock.Anything, int64(3)).
		Return(model.Category{ID: 3, Name: "Books"}, nil)
	productRepo.On("CountByCategoryID", mock.Anything, int64(3)).
		Return(int64(2), nil)

	err := uc.Delete(context.Background(), 3)
	assertHTTPStatus(t, err, http.StatusConflict)

	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// Test: 空のカテゴリは削除できる
func TestCategoryUsecase_Delete_Empty(t *testing.T) {
	categoryRepo := new(CategoryRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo, productRepo)

	categoryRepo.On("FindByID", mock.Anything, int64(3)).
		Return(model.Category{ID: 3, Name: "Books"}, nil)
	productRepo.On("CountByCategoryID", mock.Anything, int64(3)).
		Return(int64(0), nil)
	categoryRepo.On("Delete", mock.Anything, int64(3)).Return(nil)

	err := uc.Delete(context.Background(), 3)
	assert.NoError(t, err)

	categoryRepo.AssertExpectations(t)
}

// Test: 名前なしは作れない
func TestCategoryUsecase_Create_NameRequired(t *testing.T) {
	categoryRepo := new(CategoryRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCategoryUsecase(categoryRepo, productRepo)

	_, err := uc.Create(context.Background(), usecase.CategoryInput{Name: "   "})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
