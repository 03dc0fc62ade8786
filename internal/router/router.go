package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hunthub/internal/cache"
	"hunthub/internal/config"
	"hunthub/internal/handler"
	"hunthub/internal/middleware"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

// Register wires routes and middleware. Every protected route runs the
// token verifier first, then optionally a role resolver, then optionally
// the id validator; failure at any stage short-circuits.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	store *cache.Client,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	couponHandler *handler.CouponHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	verify := middleware.TokenVerifier(cfg.JWTSecret)
	admin := middleware.RequireRole(users, model.RoleAdmin)
	moderator := middleware.RequireRole(users, model.RoleModerator)
	limited := middleware.RateLimit(store, 30, time.Minute)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Auth
	e.POST("/jwt", authHandler.IssueToken, limited)

	// Users
	e.POST("/users", userHandler.Register, limited)
	e.GET("/users", userHandler.List, verify, admin)
	e.GET("/users/admin/:email", userHandler.CheckAdmin, verify)
	e.GET("/users/moderator/:email", userHandler.CheckModerator, verify)
	e.PATCH("/users/make-admin/:id", userHandler.MakeAdmin, verify, admin, middleware.ValidateID)
	e.PATCH("/users/make-moderator/:id", userHandler.MakeModerator, verify, admin, middleware.ValidateID)

	// Products
	e.GET("/products", productHandler.Search)
	e.GET("/products/featured", productHandler.Featured)
	e.GET("/products/trending", productHandler.Trending)
	e.GET("/products/owner/:email", productHandler.ByOwner, verify)
	e.GET("/products/queue", productHandler.Queue, verify, moderator)
	e.GET("/products/reported", productHandler.Reported, verify, moderator)
	e.GET("/products/:id", productHandler.Get, verify, middleware.ValidateID)
	e.POST("/products", productHandler.Create, verify)
	e.PUT("/products/:id", productHandler.Update, verify, middleware.ValidateID)
	e.DELETE("/products/:id", productHandler.Delete, verify, middleware.ValidateID)
	e.PATCH("/products/upvote/:id", productHandler.Upvote, verify, middleware.ValidateID)
	e.POST("/products/report/:id", productHandler.Report, verify, middleware.ValidateID)
	e.PATCH("/products/status/:id", productHandler.UpdateStatus, verify, moderator, middleware.ValidateID)
	e.PATCH("/products/feature/:id", productHandler.UpdateFeatured, verify, moderator, middleware.ValidateID)

	// Reviews
	e.POST("/reviews", reviewHandler.Add, verify)
	e.GET("/reviews/:productId", reviewHandler.ByProduct)

	// Coupons
	e.GET("/coupons/valid", couponHandler.ListValid)
	e.GET("/coupons/code/:code", couponHandler.Validate)
	e.GET("/coupons", couponHandler.List, verify, admin)
	e.POST("/coupons", couponHandler.Create, verify, admin)
	e.PATCH("/coupons/:id", couponHandler.Update, verify, admin, middleware.ValidateID)
	e.DELETE("/coupons/:id", couponHandler.Delete, verify, admin, middleware.ValidateID)

	// Payments
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, verify)
	e.POST("/payments", paymentHandler.Record, verify)
	e.GET("/payments/:email", paymentHandler.History, verify)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
