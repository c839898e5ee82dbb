// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luminahq/lumina-inventory/internal/config"
	"github.com/luminahq/lumina-inventory/internal/handlers"
	"github.com/luminahq/lumina-inventory/internal/middleware"
	"github.com/luminahq/lumina-inventory/internal/services"
	"github.com/luminahq/lumina-inventory/internal/store"
)

func Initialize(productStore *store.ProductStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(productStore)
	inventoryService := services.NewInventoryService()
	exportService := services.NewExportService(cfg)
	insightsService := services.NewInsightsService(cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService, inventoryService, insightsService)
	statsHandler := handlers.NewStatsHandler(productService, inventoryService)
	exportHandler := handlers.NewExportHandler(productService, inventoryService, exportService)
	insightsHandler := handlers.NewInsightsHandler(productService, insightsService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.ToggleActive)
			products.POST("/generate-description", middleware.InsightsRateLimit(), productHandler.GenerateDescription)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", productHandler.GetCategories)
		}

		// Statistics routes
		stats := v1.Group("/stats")
		{
			stats.GET("/inventory", statsHandler.GetInventoryStats)
		}

		// Export routes
		export := v1.Group("/export")
		export.Use(middleware.ExportRateLimit())
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/xlsx", exportHandler.ExportXLSX)
		}

		// Insights routes
		insights := v1.Group("/insights")
		insights.Use(middleware.InsightsRateLimit())
		{
			insights.POST("/analyze", insightsHandler.AnalyzeInventory)
		}
	}

	return r
}
