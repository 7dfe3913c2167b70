package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type PaymentMethodRepository interface {
	Create(ctx context.Context, pm model.PaymentMethod) (model.PaymentMethod, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.PaymentMethod, error)
	FindByID(ctx context.Context, paymentMethodID int64) (model.PaymentMethod, error)
	Update(ctx context.Context, pm model.PaymentMethod) error
	Delete(ctx context.Context, paymentMethodID int64) error
	IsOwnedByUser(ctx context.Context, paymentMethodID, userID int64) (bool, error)

	//デフォルトの切り替え。user内でdefaultは1つ。
	SetDefault(ctx context.Context, userID, paymentMethodID int64) error

	//ユーザー削除時の掃除
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
