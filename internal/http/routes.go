package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PackagingRoutes handles packaging, stock and composition route registration.
type PackagingRoutes struct {
	handler *Handler
}

// NewPackagingRoutes creates a new PackagingRoutes instance.
func NewPackagingRoutes(handler *Handler) *PackagingRoutes {
	return &PackagingRoutes{handler: handler}
}

// RegisterRoutes registers the packaging API routes.
func (r *PackagingRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/products/:product_id/packaging/hierarchy", r.handler.GetHierarchy)
	rg.GET("/products/:product_id/stock/consolidated", r.handler.ConsolidateStock)
	rg.POST("/pickplan", r.handler.PlanPick)

	compositions := rg.Group("/compositions")
	compositions.POST("/select", r.handler.SelectPallets)
	compositions.POST("/classify", r.handler.ClassifyComplexity)
	compositions.POST("/confirm", r.handler.ConfirmComposition)
}

// GetHandler returns the underlying handler.
func (r *PackagingRoutes) GetHandler() *Handler {
	return r.handler
}
