package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Cart() CartRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Reviews() ReviewRepository
	Wishlist() WishlistRepository
	Users() UserRepository
	Addresses() AddressRepository
	PaymentMethods() PaymentMethodRepository
	Profiles() ProfileRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
