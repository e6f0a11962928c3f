package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/http/middleware"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/modules/catalog"
	"github.com/pr-poehali-dev/hundai-parts-catalog/internal/shared/apperr"
)

// ProductsHandler serves the catalog search endpoint.
type ProductsHandler struct {
	svc *catalog.Service
}

func NewProductsHandler(svc *catalog.Service) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// List handles GET /api/products?search=&model=&category=
func (h *ProductsHandler) List(c *gin.Context) {
	items, err := h.svc.Search(c.Request.Context(), catalog.SearchParams{
		Query:    c.Query("search"),
		Model:    c.Query("model"),
		Category: c.Query("category"),
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if items == nil {
		items = []catalog.Product{}
	}

	c.JSON(http.StatusOK, gin.H{"products": items})
}

// Get handles GET /api/products/:id
func (h *ProductsHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product id.", nil))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": p})
}
