package usecase

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type CartLineOutput struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartOutput struct {
	Items      []CartLineOutput `json:"items"`
	TotalItems int64            `json:"total_items"`
	TotalPrice decimal.Decimal  `json:"total_price"`
}

func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartOutput, error) {
	if userID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := CartOutput{
		Items:      []CartLineOutput{},
		TotalPrice: decimal.Zero,
	}
	for _, ci := range items {
		p, err := u.productRepo.FindByID(ctx, ci.ProductID)
		if err == repo.ErrNotFound {
			//商品が消えた明細は表示しない
			continue
		}
		if err != nil {
			return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(ci.Quantity))
		out.Items = append(out.Items, CartLineOutput{
			ID:        ci.ID,
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  ci.Quantity,
			Subtotal:  subtotal,
		})
		out.TotalItems += ci.Quantity
		out.TotalPrice = out.TotalPrice.Add(subtotal)
	}

	return out, nil
}

// AddToCart は同じ商品が既にカートにあれば数量を加算する。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, productID int64, quantity int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if quantity < 1 {
		return NewHTTPError(http.StatusBadRequest, "quantity must be at least 1")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}

	existing, err := u.cartRepo.FindByUserAndProduct(ctx, userID, productID)
	if err == nil {
		if err := u.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	}
	if err != repo.ErrNotFound {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_, err = u.cartRepo.Create(ctx, model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err == repo.ErrConflict {
		//同時に追加された場合は加算に切り替える
		existing, err2 := u.cartRepo.FindByUserAndProduct(ctx, userID, productID)
		if err2 != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err2 := u.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+quantity); err2 != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// UpdateCartItem は数量を置き換える。0以下なら明細ごと削除する。
func (u *CartUsecase) UpdateCartItem(ctx context.Context, userID int64, cartItemID int64, quantity int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	item, err := u.cartRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//所有チェック。他人の明細は存在しない扱い。
	if item.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}

	if quantity <= 0 {
		if err := u.cartRepo.DeleteByID(ctx, cartItemID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	}

	if err := u.cartRepo.UpdateQuantity(ctx, cartItemID, quantity); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CartUsecase) RemoveCartItem(ctx context.Context, userID int64, cartItemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	item, err := u.cartRepo.FindByID(ctx, cartItemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if item.UserID != userID {
		return NewHTTPError(http.StatusNotFound, "cart item not found")
	}

	if err := u.cartRepo.DeleteByID(ctx, cartItemID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *CartUsecase) ClearCart(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.cartRepo.DeleteAllByUserID(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
