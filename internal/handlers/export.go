// internal/handlers/export.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminahq/lumina-inventory/internal/models"
	"github.com/luminahq/lumina-inventory/internal/services"
	"github.com/luminahq/lumina-inventory/internal/utils"
)

type ExportHandler struct {
	productService   *services.ProductService
	inventoryService *services.InventoryService
	exportService    *services.ExportService
}

func NewExportHandler(productService *services.ProductService, inventoryService *services.InventoryService, exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		productService:   productService,
		inventoryService: inventoryService,
		exportService:    exportService,
	}
}

// GET /export/csv
//
// Exports the current view: the same filter/sort query parameters as the
// product list apply. Zero matching records are refused up front rather than
// serialized into a header-only file.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	records, ok := h.visibleRecords(c)
	if !ok {
		return
	}

	filename := h.exportService.CSVFilename()
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.exportService.WriteCSV(c.Writer, records); err != nil {
		logrus.WithError(err).Error("Failed to write CSV export")
	}
}

// GET /export/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	records, ok := h.visibleRecords(c)
	if !ok {
		return
	}

	filename := h.exportService.XLSXFilename()
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := h.exportService.WriteXLSX(c.Writer, records); err != nil {
		logrus.WithError(err).Error("Failed to write XLSX export")
	}
}

func (h *ExportHandler) visibleRecords(c *gin.Context) ([]models.Product, bool) {
	criteria := criteriaFromQuery(c)

	records, err := h.inventoryService.Query(h.productService.Snapshot(), criteria)
	if err != nil {
		utils.InvalidCriteriaResponse(c, err.Error())
		return nil, false
	}
	if len(records) == 0 {
		utils.EmptyExportResponse(c)
		return nil, false
	}
	return records, true
}
