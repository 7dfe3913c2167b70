package usecase

import (
	"context"
	"net/http"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type AdminDashboardUsecase struct {
	userRepo     repo.UserRepository
	productRepo  repo.ProductRepository
	orderRepo    repo.OrderRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewAdminDashboardUsecase(
	userRepo repo.UserRepository,
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
	categoryRepo repo.CategoryRepository,
) *AdminDashboardUsecase {
	return &AdminDashboardUsecase{
		userRepo:     userRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		categoryRepo: categoryRepo,
	}
}

type CategoryStat struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ProductCount int64  `json:"product_count"`
}

type DashboardOutput struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	TotalProducts int64 `json:"total_products"`
	InStock       int64 `json:"in_stock"`
	TotalOrders   int64 `json:"total_orders"`
	PendingOrders int64 `json:"pending_orders"`

	//ステータス別の注文数
	OrdersByStatus map[string]int64 `json:"orders_by_status"`

	//直近30日の売上（発送済み・配達済みのみ）
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`

	Categories   []CategoryStat `json:"categories"`
	RecentOrders []OrderOutput  `json:"recent_orders"`
}

func (u *AdminDashboardUsecase) Get(ctx context.Context) (DashboardOutput, error) {
	var out DashboardOutput
	var err error

	if out.TotalUsers, err = u.userRepo.CountAll(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.ActiveUsers, err = u.userRepo.CountActive(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalProducts, err = u.productRepo.CountAll(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.InStock, err = u.productRepo.CountInStock(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if out.TotalOrders, err = u.orderRepo.CountAll(ctx); err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.OrdersByStatus = make(map[string]int64, 5)
	for _, s := range []model.OrderStatus{
		model.OrderStatusPending, model.OrderStatusProcessing, model.OrderStatusShipped,
		model.OrderStatusDelivered, model.OrderStatusCancelled,
	} {
		n, err := u.orderRepo.CountByStatus(ctx, s)
		if err != nil {
			return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.OrdersByStatus[string(s)] = n
	}
	out.PendingOrders = out.OrdersByStatus[string(model.OrderStatusPending)]

	since := time.Now().AddDate(0, 0, -30)
	out.MonthlyRevenue, err = u.orderRepo.SumTotalSince(ctx, since, []model.OrderStatus{
		model.OrderStatusShipped, model.OrderStatusDelivered,
	})
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.Categories = make([]CategoryStat, 0, len(categories))
	for _, cat := range categories {
		count, err := u.productRepo.CountByCategoryID(ctx, cat.ID)
		if err != nil {
			return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.Categories = append(out.Categories, CategoryStat{ID: cat.ID, Name: cat.Name, ProductCount: count})
	}

	recent, err := u.orderRepo.ListRecent(ctx, 5)
	if err != nil {
		return DashboardOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.RecentOrders = make([]OrderOutput, 0, len(recent))
	for _, o := range recent {
		out.RecentOrders = append(out.RecentOrders, toOrderOutput(o, nil))
	}

	return out, nil
}
