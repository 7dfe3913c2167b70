package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"

	"github.com/shopspring/decimal"
)

type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)

	//ダッシュボード・プロフィール統計
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	SumTotalByUserID(ctx context.Context, userID int64) (decimal.Decimal, error)
	SumTotalSince(ctx context.Context, since time.Time, statuses []model.OrderStatus) (decimal.Decimal, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
}
