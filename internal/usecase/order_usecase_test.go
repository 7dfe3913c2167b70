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

type rendererMock struct{ mock.Mock }

func (m *rendererMock) Render(order model.Order, items []model.OrderItem, user model.User) ([]byte, error) {
	args := m.Called(order, items, user)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type checkoutFixture struct {
	uc          *usecase.OrderUsecase
	tx          *TxManagerMock
	orderRepo   *OrderRepoMock
	itemRepo    *OrderItemRepoMock
	cartRepo    *CartRepoMock
	productRepo *ProductRepoMock
	addressRepo *AddressRepoMock
	userRepo    *UserRepoMock
	renderer    *rendererMock
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		orderRepo:   new(OrderRepoMock),
		itemRepo:    new(OrderItemRepoMock),
		cartRepo:    new(CartRepoMock),
		productRepo: new(ProductRepoMock),
		addressRepo: new(AddressRepoMock),
		userRepo:    new(UserRepoMock),
		renderer:    new(rendererMock),
	}
	f.tx = &TxManagerMock{Repos: &TxReposMock{
		orders:     f.orderRepo,
		orderItems: f.itemRepo,
		cart:       f.cartRepo,
		products:   f.productRepo,
	}}
	f.uc = usecase.NewOrderUsecase(f.tx, f.orderRepo, f.itemRepo, f.addressRepo, f.userRepo, f.renderer)
	return f
}

// Test: チェックアウトはカート全体を1注文に変換する
// 合計は現在価格×数量、明細は価格スナップショット、カートは空になる
func TestOrderUsecase_Checkout(t *testing.T) {
	f := newCheckoutFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)

	f.cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 101, Quantity: 2},
		{ID: 2, UserID: 1, ProductID: 102, Quantity: 1},
	}, nil)
	f.productRepo.On("FindByID", mock.Anything, int64(101)).
		Return(model.Product{ID: 101, Name: "Product A", Price: decimal.NewFromFloat(10.00), IsActive: true}, nil)
	f.productRepo.On("FindByID", mock.Anything, int64(102)).
		Return(model.Product{ID: 102, Name: "Product B", Price: decimal.NewFromFloat(5.50), IsActive: true}, nil)

	f.orderRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == 1 &&
			o.Status == model.OrderStatusPending &&
			o.TotalPrice.Equal(decimal.NewFromFloat(25.50)) &&
			o.Number != "" &&
			o.ShippingAddress == "1 Main St"
	})).Return(int64(42), nil)

	f.itemRepo.On("CreateBulk", mock.Anything, int64(42), mock.MatchedBy(func(items []model.OrderItem) bool {
		if len(items) != 2 {
			return false
		}
		return items[0].ProductName == "Product A" &&
			items[0].UnitPrice.Equal(decimal.NewFromFloat(10.00)) &&
			items[0].Quantity == 2 &&
			items[1].ProductName == "Product B" &&
			items[1].UnitPrice.Equal(decimal.NewFromFloat(5.50)) &&
			items[1].Quantity == 1
	})).Return(nil)

	f.cartRepo.On("DeleteAllByUserID", mock.Anything, int64(1)).Return(nil)

	f.orderRepo.On("FindByID", mock.Anything, int64(42)).Return(model.Order{
		ID: 42, UserID: 1, Number: "n", Status: model.OrderStatusPending,
		TotalPrice: decimal.NewFromFloat(25.50), ShippingAddress: "1 Main St",
	}, nil)

	out, err := f.uc.Checkout(context.Background(), 1, usecase.CheckoutInput{ShippingAddress: "1 Main St"})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)
	assert.Equal(t, string(model.OrderStatusPending), out.Status)
	assert.True(t, out.TotalPrice.Equal(decimal.NewFromFloat(25.50)))
	assert.Len(t, out.Items, 2)

	f.orderRepo.AssertExpectations(t)
	f.itemRepo.AssertExpectations(t)
	f.cartRepo.AssertExpectations(t)
}

// Test: 空カートのチェックアウトは400で注文は作られない
func TestOrderUsecase_Checkout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)

	f.cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	_, err := f.uc.Checkout(context.Background(), 1, usecase.CheckoutInput{ShippingAddress: "1 Main St"})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.cartRepo.AssertNotCalled(t, "DeleteAllByUserID", mock.Anything, mock.Anything)
}

// Test: 住所IDは所有チェックされる
func TestOrderUsecase_Checkout_AddressNotOwned(t *testing.T) {
	f := newCheckoutFixture()

	f.addressRepo.On("IsOwnedByUser", mock.Anything, int64(5), int64(1)).Return(false, nil)

	_, err := f.uc.Checkout(context.Background(), 1, usecase.CheckoutInput{AddressID: 5})
	assertHTTPStatus(t, err, http.StatusForbidden)

	f.tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

// Test: 住所も住所IDも無ければ400
func TestOrderUsecase_Checkout_MissingAddress(t *testing.T) {
	f := newCheckoutFixture()

	_, err := f.uc.Checkout(context.Background(), 1, usecase.CheckoutInput{})
	assertHTTPStatus(t, err, http.StatusBadRequest)
}

// Test: 他人の注文は見えない
func TestOrderUsecase_GetMyOrder_NotOwned(t *testing.T) {
	f := newCheckoutFixture()

	f.orderRepo.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, UserID: 99}, nil)

	_, err := f.uc.GetMyOrder(context.Background(), 1, 42)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

// Test: pending以外の注文は本人でもキャンセルできない
func TestOrderUsecase_CancelMyOrder_NotPending(t *testing.T) {
	f := newCheckoutFixture()

	f.orderRepo.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, UserID: 1, Status: model.OrderStatusShipped}, nil)
	f.itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{}, nil)

	err := f.uc.CancelMyOrder(context.Background(), 1, 42)
	assertHTTPStatus(t, err, http.StatusConflict)

	f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// Test: 請求書はPDFバイト列とファイル名を返す
func TestOrderUsecase_InvoicePDF(t *testing.T) {
	f := newCheckoutFixture()

	order := model.Order{ID: 42, UserID: 1, Number: "abc-123", Status: model.OrderStatusDelivered}
	items := []model.OrderItem{{OrderID: 42, ProductName: "Product A", Quantity: 1}}
	user := model.User{ID: 1, Username: "alice", Email: "alice@example.com"}

	f.orderRepo.On("FindByID", mock.Anything, int64(42)).Return(order, nil)
	f.itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return(items, nil)
	f.userRepo.On("FindByID", mock.Anything, int64(1)).Return(user, nil)
	f.renderer.On("Render", order, items, user).Return([]byte("%PDF-fake"), nil)

	pdf, filename, err := f.uc.InvoicePDF(context.Background(), 1, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "invoice_abc-123.pdf", filename)
}

// Test: 消えた商品がカートに残っていたら409で中断
func TestOrderUsecase_Checkout_ProductGone(t *testing.T) {
	f := newCheckoutFixture()
	f.tx.On("WithinTx", mock.Anything).Return(nil)

	f.cartRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 101, Quantity: 2},
	}, nil)
	f.productRepo.On("FindByID", mock.Anything, int64(101)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := f.uc.Checkout(context.Background(), 1, usecase.CheckoutInput{ShippingAddress: "1 Main St"})
	assertHTTPStatus(t, err, http.StatusConflict)

	f.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
