package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medsupply/inventory-api/internal/api/handler"
	"github.com/medsupply/inventory-api/internal/api/middleware"
	"github.com/medsupply/inventory-api/internal/core/domain"
	"github.com/medsupply/inventory-api/internal/core/service"
	mongodb "github.com/medsupply/inventory-api/internal/infrastructure/db/mongo"
	redisdb "github.com/medsupply/inventory-api/internal/infrastructure/db/redis"
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
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour)
	productService := service.NewProductService(productRepo, productCache, log)
	inventoryService := service.NewInventoryService(productRepo, productCache, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, inventoryService)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- User routes ---
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)

	// --- Product catalog ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, auth, adminOnly)
	e.PUT("/products/:id", productHandler.Update, auth, adminOnly)
	e.DELETE("/products/:id", productHandler.Delete, auth, adminOnly)

	// --- Stock adjustments ---
	// TODO: these are reachable without a token, so any client can drain
	// inventory; awaiting a product decision on requiring auth here.
	e.PATCH("/products/:id/reduce-stock", productHandler.ReduceStock)
	e.PATCH("/products/:id/increase-stock", productHandler.IncreaseStock)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
