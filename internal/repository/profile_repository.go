package repository

import (
	"context"

	"storefront/internal/domain/model"
)

type ProfileRepository interface {
	//プロフィールを取得し、無ければ作る
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.UserProfile, error)

	Update(ctx context.Context, profile model.UserProfile) error

	//ユーザー削除時の掃除
	DeleteAllByUserID(ctx context.Context, userID int64) error
}
