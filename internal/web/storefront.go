package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/validation"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/shared/apperr"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/api"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/cart"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/storefront/checkout"
)

// StorefrontHandler exposes the visitor-facing flow: catalog browsing,
// cart mutation, checkout. All state lives in the session.
type StorefrontHandler struct{}

func NewStorefrontHandler() *StorefrontHandler { return &StorefrontHandler{} }

// Products handles GET /products?search=&model= — each call re-queries
// the backend and replaces the displayed set.
func (h *StorefrontHandler) Products(c *gin.Context) {
	sess := CurrentSession(c)

	items, err := sess.Catalog.Fetch(c.Request.Context(), c.Query("search"), c.Query("model"))
	if err != nil {
		middleware.Fail(c, upstreamErr("Failed to load products.", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": items})
}

type cartSummary struct {
	Items      []cart.Line `json:"items"`
	TotalCents int64       `json:"total"`
	Count      int         `json:"count"`
}

func summarize(crt *cart.Cart) cartSummary {
	return cartSummary{
		Items:      crt.Lines(),
		TotalCents: crt.TotalCents(),
		Count:      crt.ItemCount(),
	}
}

// CartGet handles GET /cart
func (h *StorefrontHandler) CartGet(c *gin.Context) {
	sess := CurrentSession(c)
	c.JSON(http.StatusOK, summarize(sess.Cart))
}

type cartItemRef struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// CartAdd handles POST /cart/add — the product must be in the currently
// displayed set.
func (h *StorefrontHandler) CartAdd(c *gin.Context) {
	var in cartItemRef
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Missing product_id.", validation.FromBindError(err, &in)))
		return
	}

	sess := CurrentSession(c)

	p, ok := sess.Catalog.Find(in.ProductID)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}

	sess.Cart.Add(p)

	c.JSON(http.StatusOK, gin.H{
		"message": "Added to cart",
		"cart":    summarize(sess.Cart),
	})
}

type cartQuantityInput struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

// CartSetQuantity handles POST /cart/quantity
func (h *StorefrontHandler) CartSetQuantity(c *gin.Context) {
	var in cartQuantityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Quantity must be at least 1.", validation.FromBindError(err, &in)))
		return
	}

	sess := CurrentSession(c)
	sess.Cart.SetQuantity(in.ProductID, in.Quantity)

	c.JSON(http.StatusOK, summarize(sess.Cart))
}

// CartDecrement handles POST /cart/decrement — quantity clamps at 1, it
// never drops a line.
func (h *StorefrontHandler) CartDecrement(c *gin.Context) {
	var in cartItemRef
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Missing product_id.", validation.FromBindError(err, &in)))
		return
	}

	sess := CurrentSession(c)
	sess.Cart.Decrement(in.ProductID)

	c.JSON(http.StatusOK, summarize(sess.Cart))
}

// CartRemove handles POST /cart/remove
func (h *StorefrontHandler) CartRemove(c *gin.Context) {
	var in cartItemRef
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Missing product_id.", validation.FromBindError(err, &in)))
		return
	}

	sess := CurrentSession(c)
	sess.Cart.Remove(in.ProductID)

	c.JSON(http.StatusOK, summarize(sess.Cart))
}

// CheckoutBegin handles POST /checkout/begin
func (h *StorefrontHandler) CheckoutBegin(c *gin.Context) {
	sess := CurrentSession(c)
	sess.Checkout.Begin()
	c.JSON(http.StatusOK, gin.H{"phase": sess.Checkout.Phase()})
}

// CheckoutBack handles POST /checkout/back
func (h *StorefrontHandler) CheckoutBack(c *gin.Context) {
	sess := CurrentSession(c)
	sess.Checkout.Back()
	c.JSON(http.StatusOK, gin.H{"phase": sess.Checkout.Phase()})
}

// CheckoutSubmit handles POST /checkout — on success the cart is empty
// and the visitor is back at the cart view with an order number in hand.
func (h *StorefrontHandler) CheckoutSubmit(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid checkout form.", validation.FromBindError(err, &form)))
		return
	}

	sess := CurrentSession(c)

	orderNumber, err := sess.Checkout.Submit(c.Request.Context(), form, sess.Cart)
	if err != nil {
		var ve *checkout.ValidationError
		switch {
		case errors.As(err, &ve):
			middleware.Fail(c, apperr.InvalidErr("Missing required fields.", ve.Fields))
		case errors.Is(err, checkout.ErrSubmitInFlight):
			middleware.Fail(c, apperr.ConflictErr("Submission already in progress."))
		default:
			middleware.Fail(c, upstreamErr("Order submission failed.", err))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_number": orderNumber,
		"phase":        sess.Checkout.Phase(),
		"cart":         summarize(sess.Cart),
	})
}

// upstreamErr maps a backend call failure onto the two user-facing
// flavors: the service answered with an error, or it never answered.
func upstreamErr(context string, err error) *apperr.AppError {
	var re *api.RequestError
	if errors.As(err, &re) {
		return apperr.UnavailableErr(context+" Please try again.", err)
	}
	return apperr.UnavailableErr(context+" Check your connection and try again.", err)
}
