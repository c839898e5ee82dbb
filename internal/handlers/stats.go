// internal/handlers/stats.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/luminahq/lumina-inventory/internal/services"
	"github.com/luminahq/lumina-inventory/internal/utils"
)

type StatsHandler struct {
	productService   *services.ProductService
	inventoryService *services.InventoryService
}

func NewStatsHandler(productService *services.ProductService, inventoryService *services.InventoryService) *StatsHandler {
	return &StatsHandler{
		productService:   productService,
		inventoryService: inventoryService,
	}
}

// GET /stats/inventory
//
// Headline numbers cover the whole inventory regardless of any active
// filter; the dashboard cards sit above the filtered table on purpose.
func (h *StatsHandler) GetInventoryStats(c *gin.Context) {
	stats := h.inventoryService.Aggregate(h.productService.Snapshot())
	utils.SuccessResponse(c, gin.H{"stats": stats})
}
