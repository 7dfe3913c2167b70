package server

import (
	"storefront/internal/config"
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
)

// Handlers はルート登録に必要なハンドラ一式。
type Handlers struct {
	Auth          *handler.AuthHandler
	Product       *handler.ProductHandler
	Category      *handler.CategoryHandler
	Cart          *handler.CartHandler
	Order         *handler.OrderHandler
	Review        *handler.ReviewHandler
	Wishlist      *handler.WishlistHandler
	Address       *handler.AddressHandler
	PaymentMethod *handler.PaymentMethodHandler
	Profile       *handler.ProfileHandler
	AdminProduct  *handler.AdminProductHandler
	AdminUser     *handler.AdminUserHandler
	AdminOrder    *handler.AdminOrderHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	//公開
	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Category.RegisterRoutes(e)

	//要ログイン
	h.Cart.RegisterRoutes(e, cfg)
	h.Order.RegisterRoutes(e, cfg)
	h.Review.RegisterRoutes(e, cfg)
	h.Wishlist.RegisterRoutes(e, cfg)
	h.Address.RegisterRoutes(e, cfg)
	h.PaymentMethod.RegisterRoutes(e, cfg)
	h.Profile.RegisterRoutes(e, cfg)

	//管理者のみ
	h.AdminProduct.RegisterRoutes(e, cfg)
	h.AdminUser.RegisterRoutes(e, cfg)
	h.AdminOrder.RegisterRoutes(e, cfg)
}
