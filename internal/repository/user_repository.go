package repository

import (
	"context"
	"time"

	"storefront/internal/domain/model"
)

// 管理画面のユーザー一覧の絞り込み
type AdminUserListFilter struct {
	Page   int
	Limit  int
	Search string // username / email / 氏名の部分一致
	Status string // active / inactive / staff
}

// 保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)

	UpdateProfileFields(ctx context.Context, userID int64, firstName, lastName, email string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	//管理者操作
	ListAdmin(ctx context.Context, f AdminUserListFilter) ([]model.User, int64, error)
	SetActive(ctx context.Context, userID int64, active bool) error
	SetActiveBulk(ctx context.Context, userIDs []int64, active bool) error
	DeleteByIDs(ctx context.Context, userIDs []int64) error

	//ダッシュボード統計
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
