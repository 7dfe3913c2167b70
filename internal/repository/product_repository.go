package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一意制約違反（同時登録など）
var ErrConflict = errors.New("conflict")

// 一覧検索
type ProductListQuery struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *int64
	Sort       string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)

	//管理画面用（非公開も含む）
	ListAdmin(ctx context.Context, page int, limit int) ([]model.Product, int64, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error

	//カテゴリ削除の競合チェックとダッシュボードで使う
	CountByCategoryID(ctx context.Context, categoryID int64) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountInStock(ctx context.Context) (int64, error)
}
