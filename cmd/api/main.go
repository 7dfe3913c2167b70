package main

import (
	"log"
	"time"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/invoice"
	"storefront/internal/server"
	"storefront/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.Category{},
		&model.Product{},
		&model.Review{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.Address{},
		&model.PaymentMethod{},
		&model.WishlistItem{},
	); err != nil {
		log.Fatal(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	profileRepo := infraRepo.NewProfileGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	pmRepo := infraRepo.NewPaymentMethodGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//請求書PDF
	renderer := invoice.NewPDFRenderer("Storefront")

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, profileRepo, cfg.JWTSecret, 15*time.Minute)
	productUC := usecase.NewProductUsecase(productRepo, reviewRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, orderItemRepo, addressRepo, userRepo, renderer)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	addressUC := usecase.NewAddressUsecase(addressRepo)
	pmUC := usecase.NewPaymentMethodUsecase(pmRepo)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo, orderRepo)
	adminUserUC := usecase.NewAdminUserUsecase(txManager, userRepo)
	adminProductUC := usecase.NewAdminProductUsecase(txManager, productRepo, categoryRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, orderItemRepo)
	dashboardUC := usecase.NewAdminDashboardUsecase(userRepo, productRepo, orderRepo, categoryRepo)

	//Handler生成
	handlers := server.Handlers{
		Auth:          handler.NewAuthHandler(authUC),
		Product:       handler.NewProductHandler(productUC, reviewUC),
		Category:      handler.NewCategoryHandler(categoryUC),
		Cart:          handler.NewCartHandler(cartUC),
		Order:         handler.NewOrderHandler(orderUC),
		Review:        handler.NewReviewHandler(reviewUC),
		Wishlist:      handler.NewWishlistHandler(wishlistUC),
		Address:       handler.NewAddressHandler(addressUC),
		PaymentMethod: handler.NewPaymentMethodHandler(pmUC),
		Profile:       handler.NewProfileHandler(profileUC),
		AdminProduct:  handler.NewAdminProductHandler(adminProductUC, categoryUC),
		AdminUser:     handler.NewAdminUserHandler(adminUserUC),
		AdminOrder:    handler.NewAdminOrderHandler(adminOrderUC, dashboardUC),
	}

	//Server起動
	e := server.New(cfg)
	server.RegisterRoutes(e, cfg, handlers)
	if err := server.Start(e, cfg.Port); err != nil {
		log.Fatal(err)
	}
}
