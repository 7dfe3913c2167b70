package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

type AdminProductUsecase struct {
	tx           repo.TransactionManager
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewAdminProductUsecase(
	tx repo.TransactionManager,
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
) *AdminProductUsecase {
	return &AdminProductUsecase{
		tx:           tx,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

type AdminProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	IsActive    bool
	CategoryID  int64
}

func (in AdminProductInput) validate() error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if len(name) > 200 {
		return NewHTTPError(http.StatusBadRequest, "name too long")
	}
	//最低価格は0.01
	if in.Price.LessThan(decimal.NewFromFloat(0.01)) {
		return NewHTTPError(http.StatusBadRequest, "price must be at least 0.01")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock cannot be negative")
	}
	if in.CategoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "category required")
	}
	return nil
}

func (u *AdminProductUsecase) List(ctx context.Context, page int) (ProductListOutput, error) {
	if page < 1 {
		page = 1
	}
	items, total, err := u.productRepo.ListAdmin(ctx, page, adminPageSize)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  page,
		Limit: adminPageSize,
	}, nil
}

func (u *AdminProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *AdminProductUsecase) Create(ctx context.Context, in AdminProductInput) (model.Product, error) {
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "category not found")
	} else if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsActive:    in.IsActive,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

func (u *AdminProductUsecase) Update(ctx context.Context, productID int64, in AdminProductInput) (model.Product, error) {
	p, err := u.Get(ctx, productID)
	if err != nil {
		return model.Product{}, err
	}
	if err := in.validate(); err != nil {
		return model.Product{}, err
	}
	if in.CategoryID != p.CategoryID {
		if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err == repo.ErrNotFound {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "category not found")
		} else if err != nil {
			return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.IsActive = in.IsActive
	p.CategoryID = in.CategoryID

	if err := u.productRepo.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// Delete は商品を論理削除し、カートとウィッシュリストから取り除く。
// 過去の注文明細はスナップショットなのでそのまま残る。
func (u *AdminProductUsecase) Delete(ctx context.Context, productID int64) error {
	if _, err := u.Get(ctx, productID); err != nil {
		return err
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Cart().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		if err := r.Wishlist().DeleteByProductID(ctx, productID); err != nil {
			return err
		}
		return r.Products().SoftDelete(ctx, productID)
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
