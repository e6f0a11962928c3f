package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/validation"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/orders"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/shared/apperr"
)

// OrdersHandler is the order-management API: full listing plus status
// updates. The storefront never touches these routes.
type OrdersHandler struct {
	svc *orders.Service
}

func NewOrdersHandler(svc *orders.Service) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

// List handles GET /api/admin/orders
func (h *OrdersHandler) List(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if items == nil {
		items = []orders.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": items})
}

type updateStatusInput struct {
	OrderID int64  `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /api/admin/orders
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var in updateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Missing order_id or status.", errs))
		return
	}

	err := h.svc.UpdateStatus(c.Request.Context(), in.OrderID, in.Status)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrUnknownStatus):
			middleware.Fail(c, apperr.InvalidErr("Unknown order status.", nil))
		case errors.Is(err, orders.ErrNotFound):
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated"})
}
