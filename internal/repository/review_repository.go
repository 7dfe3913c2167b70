package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type ReviewRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.Review, error)

	// (user, product)で1件。既にあれば rating/comment を上書きする。
	Upsert(ctx context.Context, review model.Review) (model.Review, error)

	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error

	//平均評価とレビュー数
	AverageByProductID(ctx context.Context, productID int64) (float64, int64, error)

	//ユーザー削除時の掃除
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
