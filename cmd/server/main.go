package main

import (
	"log"
	"net/http"
	"os"

	_ "hunthub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"hunthub/internal/auth"
	"hunthub/internal/cache"
	"hunthub/internal/config"
	"hunthub/internal/db"
	"hunthub/internal/handler"
	"hunthub/internal/model"
	"hunthub/internal/repository"
	"hunthub/internal/router"
	"hunthub/internal/service"
)

// @title Product Hunt API
// @version 1.0
// @description REST backend for a product-hunt-style listing site with JWT authentication and role-gated moderation.
// @host localhost:5000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Payment{},
			&model.PaymentIntent{},
			&model.Coupon{},
			&model.Review{},
			&model.ProductReport{},
			&model.ProductVote{},
			&model.Product{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(
		gormDB,
		&model.User{},
		&model.Product{},
		&model.ProductVote{},
		&model.ProductReport{},
		&model.Review{},
		&model.Coupon{},
		&model.PaymentIntent{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	couponRepo := repository.NewCouponRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	couponService := service.NewCouponService(couponRepo)
	paymentService := service.NewPaymentService(paymentRepo, userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(jwtService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	couponHandler := handler.NewCouponHandler(couponService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Register routes
	router.Register(
		e,
		cfg,
		cacheClient,
		userRepo,
		authHandler,
		userHandler,
		productHandler,
		reviewHandler,
		couponHandler,
		paymentHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("hunt started at port %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
