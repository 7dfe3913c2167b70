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

func validAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		Type:          "home",
		FullName:      "Alice Example",
		Phone:         "0123456789",
		StreetAddress: "1 Main St",
		City:          "Springfield",
		State:         "IL",
		PostalCode:    "62701",
		Country:       "USA",
	}
}

// Test: is_default付きで作るとSetDefaultで切り替わる
func TestAddressUsecase_Create_Default(t *testing.T) {
	addressRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(addressRepo)

	in := validAddressInput()
	in.IsDefault = true

	addressRepo.On("Create", mock.Anything, mock.MatchedBy(func(a model.Address) bool {
		return a.UserID == 1 && a.Type == model.AddressTypeHome && !a.IsDefault
	})).Return(model.Address{ID: 10, UserID: 1, Type: model.AddressTypeHome}, nil)

	// デフォルトはSetDefault経由でuser内1件に保たれる
	addressRepo.On("SetDefault", mock.Anything, int64(1), int64(10)).Return(nil)

	out, err := uc.Create(context.Background(), 1, in)
	assert.NoError(t, err)
	assert.True(t, out.IsDefault)

	addressRepo.AssertExpectations(t)
}

// Test: デフォルト指定なしならSetDefaultは呼ばれない
func TestAddressUsecase_Create_NotDefault(t *testing.T) {
	addressRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(addressRepo)

	addressRepo.On("Create", mock.Anything, mock.Anything).
		Return(model.Address{ID: 10, UserID: 1}, nil)

	_, err := uc.Create(context.Background(), 1, validAddressInput())
	assert.NoError(t, err)

	addressRepo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything, mock.Anything)
}

// Test: 他人の住所は触れない
func TestAddressUsecase_Delete_NotOwned(t *testing.T) {
	addressRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(addressRepo)

	addressRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Address{ID: 10, UserID: 99}, nil)

	err := uc.Delete(context.Background(), 1, 10)
	assertHTTPStatus(t, err, http.StatusNotFound)

	addressRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// Test: typeの不正はバリデーションエラー
func TestAddressUsecase_Create_InvalidType(t *testing.T) {
	addressRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(addressRepo)

	in := validAddressInput()
	in.Type = "warehouse"

	_, err := uc.Create(context.Background(), 1, in)
	assertHTTPStatus(t, err, http.StatusBadRequest)

	addressRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
