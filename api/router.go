package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_dashboard/internal/store"
)

// InitRoutes registers the dashboard endpoints on the given Gin engine. The
// store is created at process start and passed down by reference; handlers
// never hold state of their own.
func InitRoutes(e *gin.Engine, st *store.Store, logger *zap.Logger) {
	h := NewDashboardHandler(st, logger)

	e.GET("/api/data", h.handleGetData)
	e.POST("/api/sales", h.handleRecordSale)
	e.POST("/api/products", h.handleManageProduct)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
