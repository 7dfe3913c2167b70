package repository

import (
	"context"

	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	orders         repo.OrderRepository
	orderItems     repo.OrderItemRepository
	cart           repo.CartRepository
	products       repo.ProductRepository
	categories     repo.CategoryRepository
	reviews        repo.ReviewRepository
	wishlist       repo.WishlistRepository
	users          repo.UserRepository
	addresses      repo.AddressRepository
	paymentMethods repo.PaymentMethodRepository
	profiles       repo.ProfileRepository
}

func (r *txReposGorm) Orders() repo.OrderRepository                 { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository         { return r.orderItems }
func (r *txReposGorm) Cart() repo.CartRepository                    { return r.cart }
func (r *txReposGorm) Products() repo.ProductRepository             { return r.products }
func (r *txReposGorm) Categories() repo.CategoryRepository          { return r.categories }
func (r *txReposGorm) Reviews() repo.ReviewRepository               { return r.reviews }
func (r *txReposGorm) Wishlist() repo.WishlistRepository            { return r.wishlist }
func (r *txReposGorm) Users() repo.UserRepository                   { return r.users }
func (r *txReposGorm) Addresses() repo.AddressRepository            { return r.addresses }
func (r *txReposGorm) PaymentMethods() repo.PaymentMethodRepository { return r.paymentMethods }
func (r *txReposGorm) Profiles() repo.ProfileRepository             { return r.profiles }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			orders:         NewOrderGormRepository(tx),
			orderItems:     NewOrderItemGormRepository(tx),
			cart:           NewCartGormRepository(tx),
			products:       NewProductGormRepository(tx),
			categories:     NewCategoryGormRepository(tx),
			reviews:        NewReviewGormRepository(tx),
			wishlist:       NewWishlistGormRepository(tx),
			users:          NewUserGormRepository(tx),
			addresses:      NewAddressGormRepository(tx),
			paymentMethods: NewPaymentMethodGormRepository(tx),
			profiles:       NewProfileGormRepository(tx),
		}
		return fn(r)
	})
}
