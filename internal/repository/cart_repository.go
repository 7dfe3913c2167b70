package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error

	//チェックアウト成功時にユーザーのカートを空にする
	DeleteAllByUserID(ctx context.Context, userID int64) error

	//商品削除時の掃除
	DeleteByProductID(ctx context.Context, productID int64) error
}
