package server

import (
	"context"

	"techgear/internal/database"
	"techgear/internal/handlers"
	"techgear/internal/metrics"
	"techgear/internal/repositories"
	"techgear/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options configures NewApp.
type Options struct {
	DB *gorm.DB
	// Publisher receives product change events; nil disables them.
	Publisher services.EventPublisher
	Log       *zap.Logger
	// AccessLog enables Fiber's request logger.
	AccessLog bool
}

// NewApp wires repositories, services and handlers into a Fiber app.
func NewApp(opts Options) *fiber.App {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	productRepo := repositories.NewGORMProductRepository(opts.DB)
	customerRepo := repositories.NewGORMCustomerRepository(opts.DB)
	reviewRepo := repositories.NewGORMReviewRepository(opts.DB)

	productService := services.NewProductService(productRepo, opts.Publisher, log)
	customerService := services.NewCustomerService(customerRepo)
	statsService := services.NewStatsService(productRepo, reviewRepo)

	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, opts.DB)
	})
	productHandler := handlers.NewProductHandler(productService, log)
	customerHandler := handlers.NewCustomerHandler(customerService, log)
	statsHandler := handlers.NewStatsHandler(statsService, log)

	app := fiber.New(fiber.Config{
		AppName:               "techgear",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(metrics.Middleware())

	app.Get("/metrics", metrics.Handler())
	healthHandler.RegisterRoutes(app)
	// Literal /products/... paths before the :id routes.
	statsHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	customerHandler.RegisterRoutes(app)
	productHandler.RegisterItemRoutes(app)

	return app
}
