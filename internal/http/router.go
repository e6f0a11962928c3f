package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/handlers"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/handlers/admin"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/catalog"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/orders"
)

type RouterConfig struct {
	AdminTokenHash string // bcrypt hash of the admin bearer token
}

func NewRouter(logger *slog.Logger, db *gorm.DB, cfg RouterConfig) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	// ErrorHandler must sit outside Recovery: its response writing runs
	// after Next returns, and a panic only returns normally once Recovery
	// has caught it.
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS())

	catalogSvc := catalog.NewService(catalog.NewGormRepo(db))
	ordersSvc := orders.NewService(orders.NewRepo(db))

	products := handlers.NewProductsHandler(catalogSvc)
	orderIntake := handlers.NewOrdersHandler(ordersSvc)
	adminOrders := admin.NewOrdersHandler(ordersSvc)

	api := r.Group("/api")
	{
		api.GET("/products", products.List)
		api.GET("/products/:id", products.Get)
		api.POST("/orders", orderIntake.Create)
	}

	adm := api.Group("/admin", middleware.RequireAdmin(cfg.AdminTokenHash))
	{
		adm.GET("/orders", adminOrders.List)
		adm.PUT("/orders", adminOrders.UpdateStatus)
	}

	return r
}
