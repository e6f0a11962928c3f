package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/validation"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/orders"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/shared/apperr"
)

// OrdersHandler accepts new orders from the storefront.
type OrdersHandler struct {
	svc *orders.Service
}

func NewOrdersHandler(svc *orders.Service) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

type orderItemInput struct {
	ProductName  string `json:"product_name" binding:"required,max=255"`
	ProductVIN   string `json:"product_vin" binding:"required,max=64"`
	ProductModel string `json:"product_model" binding:"required,max=50"`
	PriceCents   int64  `json:"price" binding:"min=0"`
	Quantity     int    `json:"quantity" binding:"required,min=1"`
}

type createOrderInput struct {
	CustomerName  string           `json:"customer_name" binding:"required,max=255"`
	CustomerPhone string           `json:"customer_phone" binding:"required,max=64"`
	CustomerEmail string           `json:"customer_email" binding:"omitempty,email,max=255"`
	Items         []orderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalCents    int64            `json:"total_amount" binding:"min=0"`
}

// Create handles POST /api/orders
func (h *OrdersHandler) Create(c *gin.Context) {
	var in createOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Missing required fields.", errs))
		return
	}

	items := make([]orders.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, orders.OrderItem{
			ProductName:  it.ProductName,
			ProductVIN:   it.ProductVIN,
			ProductModel: it.ProductModel,
			PriceCents:   it.PriceCents,
			Quantity:     it.Quantity,
		})
	}

	o, err := h.svc.Create(c.Request.Context(), orders.CreateInput{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Items:         items,
		TotalCents:    in.TotalCents,
	})
	if err != nil {
		if errors.Is(err, orders.ErrMissingCustomer) || errors.Is(err, orders.ErrNoItems) {
			middleware.Fail(c, apperr.InvalidErr("Missing required fields.", nil))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"order_number": o.OrderNumber,
		"order_id":     o.ID,
	})
}
