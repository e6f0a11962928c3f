package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/validation"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/shared/apperr"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/console"
)

// AdminHandler drives the order console. Refresh is the only operation
// that talks to the backend; listing and stats read the session's last
// fetched snapshot.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler { return &AdminHandler{} }

// Refresh handles POST /admin/orders/refresh — a failure leaves the
// prior snapshot displayed.
func (h *AdminHandler) Refresh(c *gin.Context) {
	sess := CurrentSession(c)

	if err := sess.Console.Refresh(c.Request.Context()); err != nil {
		middleware.Fail(c, upstreamErr("Failed to load orders.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": sess.Console.Orders()})
}

// List handles GET /admin/orders?status= — pure filter over the
// snapshot, no network call.
func (h *AdminHandler) List(c *gin.Context) {
	sess := CurrentSession(c)
	status := c.DefaultQuery("status", console.FilterAll)

	c.JSON(http.StatusOK, gin.H{"orders": sess.Console.FilterBy(status)})
}

// Stats handles GET /admin/orders/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	sess := CurrentSession(c)
	c.JSON(http.StatusOK, sess.Console.Stats())
}

type statusUpdateInput struct {
	OrderID int64  `json:"order_id" binding:"required"`
	Status  string `json:"status" binding:"required"`
}

// UpdateStatus handles POST /admin/orders/status — the backend decides,
// then the snapshot is re-fetched; nothing is patched optimistically.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var in statusUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Missing order_id or status.", validation.FromBindError(err, &in)))
		return
	}

	sess := CurrentSession(c)

	if err := sess.Console.UpdateStatus(c.Request.Context(), in.OrderID, in.Status); err != nil {
		middleware.Fail(c, upstreamErr("Failed to update order status.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": sess.Console.Orders()})
}
