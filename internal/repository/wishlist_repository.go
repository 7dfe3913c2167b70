package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type WishlistRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.WishlistItem, error)
	Exists(ctx context.Context, userID int64, productID int64) (bool, error)
	Create(ctx context.Context, item model.WishlistItem) error
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error

	//商品・ユーザー削除時の掃除
	DeleteByProductID(ctx context.Context, productID int64) error
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
