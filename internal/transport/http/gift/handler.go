package gift

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/list_categories"
	"github.com/murkotick/gift-finder-service/internal/app/gift/queries/search_gifts"
)

type Queries struct {
	Search     *search_gifts.Handler
	Categories *list_categories.Handler
}

// Handler serves the gift finder JSON API.
type Handler struct {
	queries Queries
}

func NewHandler(q Queries) *Handler {
	return &Handler{queries: q}
}

// SearchProducts handles GET /api/products?category=&priceRange=.
// Repeated parameters use the first value.
func (h *Handler) SearchProducts(c *gin.Context) {
	req := search_gifts.Request{
		Category:   c.Query("category"),
		PriceRange: c.Query("priceRange"),
	}

	items, err := h.queries.Search.Execute(c.Request.Context(), req)
	if err != nil {
		status, msg := mapSearchError(err)
		c.JSON(status, errorResponse{Message: msg})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListCategories handles GET /api/categories?q=&limit=.
func (h *Handler) ListCategories(c *gin.Context) {
	req := list_categories.Request{Query: c.Query("q")}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, errorResponse{Message: "limit must be a positive integer"})
			return
		}
		req.Limit = n
	}

	items, err := h.queries.Categories.Execute(c.Request.Context(), req)
	if err != nil {
		status, msg := mapCategoriesError(err)
		c.JSON(status, errorResponse{Message: msg})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
