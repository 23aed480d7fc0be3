package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_dashboard/internal/store"
)

// dashboardHandler holds the store and implements the HTTP handlers for the
// dashboard API.
type dashboardHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(st *store.Store, logger *zap.Logger) *dashboardHandler {
	return &dashboardHandler{
		store:  st,
		logger: logger,
	}
}

// handleGetData handles GET /api/data: the full catalog, branch list, ledger
// and analytics in one payload.
func (h *dashboardHandler) handleGetData(ctx *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		h.logger.Error("failed to build snapshot", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	ctx.JSON(http.StatusOK, snap)
}

// handleRecordSale handles POST /api/sales.
func (h *dashboardHandler) handleRecordSale(ctx *gin.Context) {
	var req struct {
		Date     string `json:"date"`
		Product  string `json:"product"`
		Branch   string `json:"branch"`
		Quantity int    `json:"quantity"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind sale request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	sale, err := h.store.RecordSale(req.Date, req.Product, req.Branch, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidInput),
			errors.Is(err, store.ErrUnknownProduct),
			errors.Is(err, store.ErrUnknownBranch),
			errors.Is(err, store.ErrInsufficientStock):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to record sale",
				zap.Error(err),
				zap.String("product", req.Product),
				zap.String("branch", req.Branch),
			)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record sale"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "sale recorded", "sale": sale})
}

// handleManageProduct handles POST /api/products. The update flag selects
// between adding a new product and restocking/repricing an existing one.
func (h *dashboardHandler) handleManageProduct(ctx *gin.Context) {
	var req struct {
		Name   string  `json:"name"`
		Price  float64 `json:"price"`
		Stock  int     `json:"stock"`
		Update bool    `json:"update"`
	}

	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("failed to bind product request", zap.Error(err))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	var (
		product *store.Product
		message string
		err     error
	)
	if req.Update {
		product, err = h.store.RestockAndReprice(req.Name, req.Stock, req.Price)
		message = "product updated"
	} else {
		product, err = h.store.AddProduct(req.Name, req.Price, req.Stock)
		message = "product added"
	}

	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrAlreadyExists), errors.Is(err, store.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to manage product", zap.Error(err), zap.String("product", req.Name))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to manage product"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": message, "product": product})
}
