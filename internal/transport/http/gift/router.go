package gift

import (
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes onto a fresh engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(gin.Recovery(), RequestID(), AccessLog(), CORS())

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/products", h.SearchProducts)
		api.GET("/categories", h.ListCategories)
	}
	return r
}
