package web

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/session"
)

type RouterConfig struct {
	AdminTokenHash string
}

func NewRouter(logger *slog.Logger, store *session.Store, codec *session.Codec, cfg RouterConfig) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	// ErrorHandler must sit outside Recovery: its response writing runs
	// after Next returns, and a panic only returns normally once Recovery
	// has caught it.
	r.Use(middleware.ErrorHandler(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(WithSession(store, codec))

	sf := NewStorefrontHandler()
	adm := NewAdminHandler()

	r.GET("/products", sf.Products)

	crt := r.Group("/cart")
	{
		crt.GET("", sf.CartGet)
		crt.POST("/add", sf.CartAdd)
		crt.POST("/quantity", sf.CartSetQuantity)
		crt.POST("/decrement", sf.CartDecrement)
		crt.POST("/remove", sf.CartRemove)
	}

	co := r.Group("/checkout")
	{
		co.POST("", sf.CheckoutSubmit)
		co.POST("/begin", sf.CheckoutBegin)
		co.POST("/back", sf.CheckoutBack)
	}

	admin := r.Group("/admin", middleware.RequireAdmin(cfg.AdminTokenHash))
	{
		admin.GET("/orders", adm.List)
		admin.POST("/orders/refresh", adm.Refresh)
		admin.GET("/orders/stats", adm.Stats)
		admin.POST("/orders/status", adm.UpdateStatus)
	}

	return r
}
