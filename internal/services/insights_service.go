// internal/services/insights_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/luminahq/lumina-inventory/internal/config"
	"github.com/luminahq/lumina-inventory/internal/models"
)

const (
	descriptionFallback = "Description generation unavailable."
	insightsFallback    = "<ul><li>Unable to analyze inventory at this time.</li></ul>"
)

// InsightsService talks to the generative-text API that drafts product
// descriptions and inventory health narratives. Failures are absorbed into
// fixed fallback strings; nothing in the core depends on this service
// succeeding.
type InsightsService struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewInsightsService(cfg *config.Config) *InsightsService {
	return &InsightsService{
		apiKey:  cfg.AI.APIKey,
		baseURL: strings.TrimSuffix(cfg.AI.BaseURL, "/"),
		model:   cfg.AI.Model,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
		},
	}
}

// GenerateDescription drafts a short product description from a name and
// category pair.
func (s *InsightsService) GenerateDescription(ctx context.Context, name, category string) string {
	prompt := fmt.Sprintf(
		"Write a short, catchy, and professional product description (max 15 words) for a product named %q in the category %q.",
		name, category,
	)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		logrus.WithError(err).Warn("description generation failed, using fallback")
		return descriptionFallback
	}
	return text
}

type inventorySummary struct {
	Name         string          `json:"name"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"minStock"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
}

// AnalyzeInventoryHealth produces a short HTML bullet list of insights for an
// inventory snapshot. Records are simplified to name, stock, minStock and
// margin before leaving the process.
func (s *InsightsService) AnalyzeInventoryHealth(ctx context.Context, snapshot []models.Product) string {
	summary := make([]inventorySummary, len(snapshot))
	for i, p := range snapshot {
		summary[i] = inventorySummary{
			Name:         p.Name,
			Stock:        p.Stock,
			MinStock:     p.MinStock,
			ProfitMargin: p.Margin(),
		}
	}

	data, err := json.Marshal(summary)
	if err != nil {
		logrus.WithError(err).Warn("inventory summary marshal failed, using fallback")
		return insightsFallback
	}

	prompt := fmt.Sprintf(
		"Analyze this inventory data:\n%s\n\nProvide 3 brief, actionable insights focusing on restock needs and profit opportunities. Format as a simple HTML list (<ul><li>...</li></ul>) without markdown code blocks.",
		data,
	)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		logrus.WithError(err).Warn("inventory analysis failed, using fallback")
		return insightsFallback
	}
	return text
}

type generateContentRequest struct {
	Contents []promptContent `json:"contents"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type promptPart struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

func (s *InsightsService) generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("generative API key not configured")
	}

	payload, err := json.Marshal(generateContentRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.baseURL, s.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("generative API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode generative API response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generative API returned no candidates")
	}

	text := strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("generative API returned empty text")
	}
	return text, nil
}
