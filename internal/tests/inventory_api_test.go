// internal/tests/inventory_api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/luminahq/lumina-inventory/internal/config"
	"github.com/luminahq/lumina-inventory/internal/i18n"
	"github.com/luminahq/lumina-inventory/internal/router"
	"github.com/luminahq/lumina-inventory/internal/store"
)

type InventoryAPITestSuite struct {
	suite.Suite
	store  *store.ProductStore
	router *gin.Engine
}

func (suite *InventoryAPITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	_ = i18n.Initialize("../i18n/locales")
}

func (suite *InventoryAPITestSuite) SetupTest() {
	cfg := &config.Config{
		Environment: "test",
		Export: config.ExportConfig{
			FilenamePrefix: "inventory",
			CurrencySymbol: "₱",
		},
		AI: config.AIConfig{
			BaseURL:        "http://127.0.0.1:1",
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 1,
		},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
	}

	suite.store = store.New()
	suite.store.SeedDemoData()
	suite.router = router.Initialize(suite.store, cfg)
}

func (suite *InventoryAPITestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *InventoryAPITestSuite) decode(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func (suite *InventoryAPITestSuite) TestListProductsWithSearch() {
	w := suite.request("GET", "/v1/products?search=coke", nil)
	suite.Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	suite.True(response["success"].(bool))

	data := response["data"].([]interface{})
	suite.Require().Len(data, 1)
	product := data[0].(map[string]interface{})
	suite.Equal("Coke Zero 1.5L", product["name"])

	meta := response["meta"].(map[string]interface{})
	suite.EqualValues(7, meta["total_products"])
	suite.EqualValues(1, meta["matched"])
}

func (suite *InventoryAPITestSuite) TestListProductsRejectsUnknownSortField() {
	w := suite.request("GET", "/v1/products?sort=rating", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	suite.False(response["success"].(bool))
	errObj := response["error"].(map[string]interface{})
	suite.Equal("INVALID_CRITERIA", errObj["code"])
}

func (suite *InventoryAPITestSuite) TestCreateProduct() {
	payload := map[string]interface{}{
		"name":      "Century Tuna 155g",
		"category":  "Canned Goods",
		"price":     42.50,
		"cost":      33.00,
		"stock":     60,
		"min_stock": 15,
	}

	w := suite.request("POST", "/v1/products", payload)
	suite.Equal(http.StatusCreated, w.Code)

	response := suite.decode(w)
	suite.True(response["success"].(bool))

	product := response["data"].(map[string]interface{})["product"].(map[string]interface{})
	suite.EqualValues(8, product["id"])
	suite.Equal(true, product["is_active"])
}

func (suite *InventoryAPITestSuite) TestCreateProductValidation() {
	payload := map[string]interface{}{
		"name":     "",
		"category": "Canned Goods",
	}

	w := suite.request("POST", "/v1/products", payload)
	suite.Equal(http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	suite.Equal("VALIDATION_ERROR", errObj["code"])
}

func (suite *InventoryAPITestSuite) TestCreateProductRejectsSentinelCategory() {
	payload := map[string]interface{}{
		"name":     "Mystery Item",
		"category": "All",
		"stock":    1,
	}

	w := suite.request("POST", "/v1/products", payload)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InventoryAPITestSuite) TestUpdateProduct() {
	payload := map[string]interface{}{"stock": 0}

	w := suite.request("PUT", "/v1/products/1", payload)
	suite.Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	product := response["data"].(map[string]interface{})["product"].(map[string]interface{})
	suite.EqualValues(0, product["stock"])
}

func (suite *InventoryAPITestSuite) TestUpdateUnknownProduct() {
	w := suite.request("PUT", "/v1/products/999", map[string]interface{}{"stock": 5})
	suite.Equal(http.StatusNotFound, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	suite.Equal("NOT_FOUND", errObj["code"])
}

func (suite *InventoryAPITestSuite) TestArchiveAndRestore() {
	w := suite.request("DELETE", "/v1/products/2", nil)
	suite.Equal(http.StatusOK, w.Code)
	product := suite.decode(w)["data"].(map[string]interface{})["product"].(map[string]interface{})
	suite.Equal(false, product["is_active"])

	// Archived records still count in the headline stats.
	stats := suite.decode(suite.request("GET", "/v1/stats/inventory", nil))
	statData := stats["data"].(map[string]interface{})["stats"].(map[string]interface{})
	suite.EqualValues(7, statData["total_products"])

	w = suite.request("DELETE", "/v1/products/2", nil)
	suite.Equal(http.StatusOK, w.Code)
	product = suite.decode(w)["data"].(map[string]interface{})["product"].(map[string]interface{})
	suite.Equal(true, product["is_active"])
}

func (suite *InventoryAPITestSuite) TestInventoryStats() {
	w := suite.request("GET", "/v1/stats/inventory", nil)
	suite.Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	stats := response["data"].(map[string]interface{})["stats"].(map[string]interface{})
	suite.EqualValues(7, stats["total_products"])
	// Piattos (15 <= 20), Coke Zero (8 <= 12) and Gardenia (5 <= 10) sit at
	// or below their reorder points in the demo catalog.
	suite.EqualValues(3, stats["low_stock_count"])
}

func (suite *InventoryAPITestSuite) TestExportCSV() {
	w := suite.request("GET", "/v1/export/csv?category=Non-Alcoholic", nil)
	suite.Equal(http.StatusOK, w.Code)

	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Contains(w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.String()
	suite.True(strings.HasPrefix(body, "\xEF\xBB\xBF"))
	suite.Contains(body, `"Coke Zero 1.5L"`)
	suite.NotContains(body, "San Mig Light 330ml")
}

func (suite *InventoryAPITestSuite) TestExportRefusesEmptyResult() {
	w := suite.request("GET", "/v1/export/csv?search=definitely-not-a-product", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	response := suite.decode(w)
	errObj := response["error"].(map[string]interface{})
	suite.Equal("EMPTY_EXPORT", errObj["code"])
}

func (suite *InventoryAPITestSuite) TestInsightsFallsBackWhenUpstreamUnavailable() {
	w := suite.request("POST", "/v1/insights/analyze", nil)
	suite.Equal(http.StatusOK, w.Code)

	response := suite.decode(w)
	insights := response["data"].(map[string]interface{})["insights"].(string)
	suite.Contains(insights, "<ul>")
}

func (suite *InventoryAPITestSuite) TestHealthCheck() {
	w := suite.request("GET", "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "healthy")
}

func TestInventoryAPISuite(t *testing.T) {
	suite.Run(t, new(InventoryAPITestSuite))
}
