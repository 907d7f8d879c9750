package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/ordering-system/internal/api/handler"
	"github.com/bistroboss/ordering-system/internal/api/middleware"
	"github.com/bistroboss/ordering-system/internal/core/service"
	mongodb "github.com/bistroboss/ordering-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/ordering-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("bistro"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(jwtSecret)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, log)
	menuService := service.NewMenuService(menuRepo, log)
	cartService := service.NewCartService(cartRepo, menuRepo)
	paymentService := service.NewPaymentService(paymentRepo, cartRepo, log)
	statsService := service.NewStatsService(userRepo, menuRepo, paymentRepo, redisdb.NewReportCache(rdb), log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(menuService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	statsHandler := handler.NewStatsHandler(statsService)

	// --- Authorization gate ---
	gate := middleware.NewGate(tokenService, userRepo, log)
	authed := gate.Authenticated()

	v1 := e.Group("/api/v1")

	// Auth
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// Menus: public reads, admin writes.
	v1.GET("/menus", menuHandler.List)
	v1.GET("/menus/:id", menuHandler.Get)
	v1.POST("/menus", menuHandler.Create, gate.AdminOnly()...)
	v1.PATCH("/menus/:id", menuHandler.Update, gate.AdminOnly()...)
	v1.DELETE("/menus/:id", menuHandler.Delete, gate.AdminOnly()...)

	// Carts: always scoped to the authenticated caller.
	v1.GET("/carts", cartHandler.List, authed)
	v1.POST("/carts", cartHandler.Add, authed)
	v1.DELETE("/carts/:id", cartHandler.Remove, authed)

	// Users
	v1.GET("/users", userHandler.List, gate.AdminOnly()...)
	v1.GET("/users/admin/:email", userHandler.AdminFlag, gate.OwnerOnly("email")...)
	v1.PATCH("/users/:id/role", userHandler.Promote, gate.AdminOnly()...)
	v1.DELETE("/users/:id", userHandler.Delete, gate.AdminOnly()...)

	// Payments
	v1.POST("/payments", paymentHandler.Record, authed)
	v1.GET("/payments", paymentHandler.History, authed)
	v1.GET("/admin/payments", paymentHandler.AdminHistory, gate.AdminOnly()...)

	// Reports
	v1.GET("/admin/stats", statsHandler.Global, gate.AdminOnly()...)
	v1.GET("/admin/stats/categories", statsHandler.Categories, gate.AdminOnly()...)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
