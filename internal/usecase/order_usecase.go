package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRenderer は注文から請求書バイナリを作る。
type InvoiceRenderer interface {
	Render(order model.Order, items []model.OrderItem, user model.User) ([]byte, error)
}

type OrderUsecase struct {
	tx          repo.TransactionManager
	orderRepo   repo.OrderRepository
	itemRepo    repo.OrderItemRepository
	addressRepo repo.AddressRepository
	userRepo    repo.UserRepository
	renderer    InvoiceRenderer
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orderRepo repo.OrderRepository,
	itemRepo repo.OrderItemRepository,
	addressRepo repo.AddressRepository,
	userRepo repo.UserRepository,
	renderer InvoiceRenderer,
) *OrderUsecase {
	return &OrderUsecase{
		tx:          tx,
		orderRepo:   orderRepo,
		itemRepo:    itemRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		renderer:    renderer,
	}
}

type CheckoutInput struct {
	//どちらか一方を指定する
	ShippingAddress string
	AddressID       int64
}

type OrderItemOutput struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	Number          string            `json:"number"`
	Status          string            `json:"status"`
	TotalPrice      decimal.Decimal   `json:"total_price"`
	ShippingAddress string            `json:"shipping_address"`
	Items           []OrderItemOutput `json:"items,omitempty"`
	CreatedAt       string            `json:"created_at"`
}

type OrderListOutput struct {
	Items []OrderOutput `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// Checkout はカートの中身をまとめて1つの注文に変換する。
// 注文作成・明細スナップショット・カートの空化は同一トランザクション。
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	shipping, err := u.resolveShippingAddress(ctx, userID, in)
	if err != nil {
		return OrderOutput{}, err
	}

	var out OrderOutput
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cartItems, err := r.Cart().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart is empty")
		}

		total := decimal.Zero
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusConflict, "product no longer available")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			//注文時点の価格で固定する
			total = total.Add(p.Price.Mul(decimal.NewFromInt(ci.Quantity)))
			orderItems = append(orderItems, model.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				UnitPrice:   p.Price,
				Quantity:    ci.Quantity,
			})
		}

		order := model.Order{
			Number:          uuid.NewString(),
			UserID:          userID,
			Status:          model.OrderStatusPending,
			TotalPrice:      total,
			ShippingAddress: shipping,
		}
		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Cart().DeleteAllByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = toOrderOutput(created, orderItems)
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return OrderOutput{}, err
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return out, nil
}

func (u *OrderUsecase) resolveShippingAddress(ctx context.Context, userID int64, in CheckoutInput) (string, error) {
	if in.AddressID > 0 {
		owned, err := u.addressRepo.IsOwnedByUser(ctx, in.AddressID, userID)
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !owned {
			return "", NewHTTPError(http.StatusForbidden, "address does not belong to user")
		}
		a, err := u.addressRepo.FindByID(ctx, in.AddressID)
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return formatAddress(a), nil
	}

	shipping := strings.TrimSpace(in.ShippingAddress)
	if shipping == "" {
		return "", NewHTTPError(http.StatusBadRequest, "shipping address required")
	}
	return shipping, nil
}

func formatAddress(a model.Address) string {
	return fmt.Sprintf("%s, %s, %s, %s, %s %s",
		a.FullName, a.StreetAddress, a.City, a.State, a.PostalCode, a.Country)
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page int, limit int) (OrderListOutput, error) {
	if userID <= 0 {
		return OrderListOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	orders, total, err := u.orderRepo.ListByUserID(ctx, userID, page, limit)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items = append(items, toOrderOutput(o, nil))
	}
	return OrderListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (u *OrderUsecase) GetMyOrder(ctx context.Context, userID int64, orderID int64) (OrderOutput, error) {
	order, items, err := u.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return OrderOutput{}, err
	}
	return toOrderOutput(order, items), nil
}

// CancelMyOrder はpendingの注文だけ本人がキャンセルできる。
func (u *OrderUsecase) CancelMyOrder(ctx context.Context, userID int64, orderID int64) error {
	order, _, err := u.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if order.Status != model.OrderStatusPending {
		return NewHTTPError(http.StatusConflict, "only pending orders can be cancelled")
	}
	if err := u.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// InvoicePDF は請求書PDFとファイル名を返す。
func (u *OrderUsecase) InvoicePDF(ctx context.Context, userID int64, orderID int64) ([]byte, string, error) {
	order, items, err := u.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, "", err
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	pdf, err := u.renderer.Render(order, items, user)
	if err != nil {
		return nil, "", NewHTTPError(http.StatusInternalServerError, "failed to generate invoice")
	}

	filename := fmt.Sprintf("invoice_%s.pdf", order.Number)
	return pdf, filename, nil
}

func (u *OrderUsecase) findOwnedOrder(ctx context.Context, userID int64, orderID int64) (model.Order, []model.OrderItem, error) {
	if userID <= 0 {
		return model.Order{}, nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	order, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, nil, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//所有チェック
	if order.UserID != userID {
		return model.Order{}, nil, NewHTTPError(http.StatusNotFound, "order not found")
	}

	items, err := u.itemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return model.Order{}, nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return order, items, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	out := OrderOutput{
		ID:              o.ID,
		Number:          o.Number,
		Status:          string(o.Status),
		TotalPrice:      o.TotalPrice,
		ShippingAddress: o.ShippingAddress,
		CreatedAt:       o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, it := range items {
		out.Items = append(out.Items, OrderItemOutput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
		})
	}
	return out
}
