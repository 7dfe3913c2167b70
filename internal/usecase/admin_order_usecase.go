package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo repo.OrderRepository
	itemRepo  repo.OrderItemRepository
}

// DI
func NewAdminOrderUsecase(
	orderRepo repo.OrderRepository,
	itemRepo repo.OrderItemRepository,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
	}
}

type AdminOrderListInput struct {
	Page   int
	Status string
	UserID *int64
}

func (u *AdminOrderUsecase) List(ctx context.Context, in AdminOrderListInput) (OrderListOutput, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Status != "" && !model.ValidOrderStatus(in.Status) {
		return OrderListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status filter")
	}

	orders, total, err := u.orderRepo.ListAdmin(ctx, repo.AdminOrderListFilter{
		Page:   in.Page,
		Limit:  adminPageSize,
		Status: in.Status,
		UserID: in.UserID,
	})
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderOutput(o, nil))
	}
	return OrderListOutput{Items: items, Total: total, Page: in.Page, Limit: adminPageSize}, nil
}

func (u *AdminOrderUsecase) Get(ctx context.Context, orderID int64) (OrderOutput, error) {
	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.itemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(order, items), nil
}

// UpdateStatus はスタッフによるステータス変更。
// 5値のどれかであれば、どの状態からでも設定できる。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if !model.ValidOrderStatus(status) {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	if _, err := u.orderRepo.FindByID(ctx, orderID); err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "order not found")
	} else if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatus(status)); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return u.Get(ctx, orderID)
}
