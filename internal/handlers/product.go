// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luminahq/lumina-inventory/internal/i18n"
	"github.com/luminahq/lumina-inventory/internal/models"
	"github.com/luminahq/lumina-inventory/internal/services"
	"github.com/luminahq/lumina-inventory/internal/store"
	"github.com/luminahq/lumina-inventory/internal/utils"
)

type ProductHandler struct {
	productService   *services.ProductService
	inventoryService *services.InventoryService
	insightsService  *services.InsightsService
}

func NewProductHandler(productService *services.ProductService, inventoryService *services.InventoryService, insightsService *services.InsightsService) *ProductHandler {
	return &ProductHandler{
		productService:   productService,
		inventoryService: inventoryService,
		insightsService:  insightsService,
	}
}

// criteriaFromQuery reads the filter/sort query parameters shared by the
// list and export endpoints. Absent parameters fall back to the defaults;
// present but unrecognized values are rejected by the query engine.
func criteriaFromQuery(c *gin.Context) services.QueryCriteria {
	criteria := services.DefaultCriteria()
	criteria.SearchTerm = c.Query("search")
	if category := c.Query("category"); category != "" {
		criteria.Category = category
	}
	if status := c.Query("stock_status"); status != "" {
		criteria.StockFilter = services.StockFilter(status)
	}
	if sortField := c.Query("sort"); sortField != "" {
		criteria.SortField = services.SortField(sortField)
	}
	if order := c.Query("order"); order != "" {
		criteria.SortOrder = services.SortOrder(order)
	}
	return criteria
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	criteria := criteriaFromQuery(c)
	snapshot := h.productService.Snapshot()

	results, err := h.inventoryService.Query(snapshot, criteria)
	if err != nil {
		utils.InvalidCriteriaResponse(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)
	page := utils.PaginateProducts(results, params)
	result := utils.CreatePaginationResult(page, int64(len(results)), params)

	utils.SetPaginationHeaders(c, result)
	utils.SuccessResponseWithMeta(c, result.Data, gin.H{
		"pagination": gin.H{
			"page":        result.Page,
			"limit":       result.Limit,
			"total":       result.Total,
			"total_pages": result.TotalPages,
		},
		"matched":        len(results),
		"total_products": len(snapshot),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(id)
	if err != nil {
		utils.NotFoundResponse(c, "product")
		return
	}

	utils.SuccessResponse(c, gin.H{"product": product})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		respondProductError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(id, &req)
	if err != nil {
		respondProductError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /products/:id
//
// Deletion is an archive toggle: the record is retained and the operation is
// reversible by calling it again.
func (h *ProductHandler) ToggleActive(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.productService.ToggleActive(id)
	if err != nil {
		respondProductError(c, err)
		return
	}

	messageKey := i18n.KeyProductArchived
	if product.IsActive {
		messageKey = i18n.KeyProductRestored
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, messageKey),
		"product": product,
	})
}

type generateDescriptionRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Category string `json:"category" validate:"required,product_category"`
}

// POST /products/generate-description
func (h *ProductHandler) GenerateDescription(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req generateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	description := h.insightsService.GenerateDescription(c.Request.Context(), req.Name, req.Category)
	utils.SuccessResponse(c, gin.H{"description": description})
}

// GET /categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": append([]string{models.CategoryAll}, models.Categories...),
	})
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return 0, false
	}
	return id, true
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.NotFoundResponse(c, "product")
	case errors.Is(err, store.ErrEmptyName), errors.Is(err, services.ErrNegativeAmount):
		utils.ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		utils.BadRequestResponse(c, err.Error(), nil)
	}
}
