// Package handler maps HTTP requests onto the item service and serializes
// envelopes. It is the single place that translates typed outcomes into
// status codes.
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ncobase/catalog/config"
	"github.com/ncobase/catalog/logger"
	"github.com/ncobase/catalog/resp"
	"github.com/ncobase/catalog/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Item   *ItemHandler
	logger *logger.Logger
}

// NewHandler creates a handler instance with all sub-handlers initialized.
func NewHandler(cfg *config.Config, svc *service.Service, logger *logger.Logger) *Handler {
	return &Handler{
		Item:   NewItemHandler(cfg, svc.Item, logger),
		logger: logger,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		resp.Success(c, resp.OKData(map[string]string{"status": "healthy"}))
	})

	api := r.Group("/api")
	{
		items := api.Group("/items")
		{
			items.GET("", h.Item.List)
			items.GET("/cursor", h.Item.ListByCursor)
			items.GET("/search", h.Item.Search)
			items.GET("/:id", h.Item.Get)
			items.POST("", h.Item.Create)
			items.PUT("/:id", h.Item.Update)
			items.DELETE("/:id", h.Item.Delete)
		}
	}
}
