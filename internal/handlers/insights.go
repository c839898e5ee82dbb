// internal/handlers/insights.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminahq/lumina-inventory/internal/services"
	"github.com/luminahq/lumina-inventory/internal/utils"
)

type InsightsHandler struct {
	productService  *services.ProductService
	insightsService *services.InsightsService
}

func NewInsightsHandler(productService *services.ProductService, insightsService *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		productService:  productService,
		insightsService: insightsService,
	}
}

// POST /insights/analyze
//
// Runs the health analysis over the whole inventory snapshot. The response
// is always 200: upstream failures come back as the fixed fallback narrative.
func (h *InsightsHandler) AnalyzeInventory(c *gin.Context) {
	snapshot := h.productService.Snapshot()
	insights := h.insightsService.AnalyzeInventoryHealth(c.Request.Context(), snapshot)
	utils.SuccessResponse(c, gin.H{"insights": insights})
}
